package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	err := errors.NotFound("character not found")
	s.Equal("NOT_FOUND: character not found", err.Error())

	wrapped := errors.Wrap(err, "failed to move")
	s.Equal("NOT_FOUND: failed to move: NOT_FOUND: character not found", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("character not found").WithMeta("character_id", 7)
	wrapped := errors.Wrap(base, "damage failed")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal(7, errors.GetMeta(wrapped)["character_id"])
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrap(fmt.Errorf("disk full"), "save failed")
	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("save failed", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.NotFound("missing").WithMeta("game_id", "g1")
	wrapped := errors.WrapWithCode(base, errors.CodeDataLoss, "snapshot unreadable")

	s.True(errors.IsDataLoss(wrapped))
	s.Equal("g1", wrapped.Meta["game_id"])
	s.Nil(base.Meta["other"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.True(errors.IsNotFound(errors.Wrap(errors.NotFound("x"), "y")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("cell %d", 3)))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("not your turn")))
	s.True(errors.IsAborted(errors.Aborted("stuck")))
	s.True(errors.IsCanceled(context.Canceled))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.NotFound("a"), errors.NotFound("b")))
	s.False(errors.Is(errors.NotFound("a"), errors.Aborted("b")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())

	errors.ValidateRange("round", 7, 1, 4, vb)
	errors.ValidateEnum("store", "mongo", []string{"memory", "redis"}, vb)
	vb.RequiredField("addr")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"validation failed: addr: is required; round: must be between 1 and 4; store: must be one of: memory, redis",
		errors.GetMessage(err),
	)
}

func (s *ErrorsTestSuite) TestStatusMapping() {
	testCases := []struct {
		code     errors.Code
		grpc     codes.Code
		httpCode int
	}{
		{errors.CodeNotFound, codes.NotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument, http.StatusBadRequest},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeAborted, codes.Aborted, http.StatusConflict},
		{errors.CodeDataLoss, codes.DataLoss, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.grpc, tc.code.GRPCCode())
			s.Equal(tc.httpCode, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	grpcErr := errors.ToGRPCError(errors.NotFound("no saved game"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("no saved game", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsNotFound(back))
	s.Equal("no saved game", errors.GetMessage(back))

	s.Nil(errors.ToGRPCError(nil))
}
