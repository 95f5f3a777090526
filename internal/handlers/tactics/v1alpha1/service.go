package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of tactics.v1alpha1.GameService
const (
	GameService_NewGame_FullMethodName  = "/tactics.v1alpha1.GameService/NewGame"
	GameService_Click_FullMethodName    = "/tactics.v1alpha1.GameService/Click"
	GameService_Commit_FullMethodName   = "/tactics.v1alpha1.GameService/Commit"
	GameService_Enter_FullMethodName    = "/tactics.v1alpha1.GameService/Enter"
	GameService_Leave_FullMethodName    = "/tactics.v1alpha1.GameService/Leave"
	GameService_Save_FullMethodName     = "/tactics.v1alpha1.GameService/Save"
	GameService_Load_FullMethodName     = "/tactics.v1alpha1.GameService/Load"
	GameService_GetState_FullMethodName = "/tactics.v1alpha1.GameService/GetState"
)

// GameServiceServer is the server API for the game service. Requests and
// responses are google.protobuf.Struct documents.
type GameServiceServer interface {
	NewGame(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Click(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Commit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Enter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Leave(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Save(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Load(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedGameServiceServer answers every method with Unimplemented
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) NewGame(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method NewGame not implemented")
}
func (UnimplementedGameServiceServer) Click(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Click not implemented")
}
func (UnimplementedGameServiceServer) Commit(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Commit not implemented")
}
func (UnimplementedGameServiceServer) Enter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Enter not implemented")
}
func (UnimplementedGameServiceServer) Leave(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Leave not implemented")
}
func (UnimplementedGameServiceServer) Save(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Save not implemented")
}
func (UnimplementedGameServiceServer) Load(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Load not implemented")
}
func (UnimplementedGameServiceServer) GetState(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameService_ServiceDesc, srv)
}

type unaryMethod func(GameServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a server method to the grpc.MethodDesc handler shape
func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GameService_ServiceDesc is the grpc.ServiceDesc for the game service
var GameService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tactics.v1alpha1.GameService",
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewGame", Handler: unaryHandler(GameService_NewGame_FullMethodName, GameServiceServer.NewGame)},
		{MethodName: "Click", Handler: unaryHandler(GameService_Click_FullMethodName, GameServiceServer.Click)},
		{MethodName: "Commit", Handler: unaryHandler(GameService_Commit_FullMethodName, GameServiceServer.Commit)},
		{MethodName: "Enter", Handler: unaryHandler(GameService_Enter_FullMethodName, GameServiceServer.Enter)},
		{MethodName: "Leave", Handler: unaryHandler(GameService_Leave_FullMethodName, GameServiceServer.Leave)},
		{MethodName: "Save", Handler: unaryHandler(GameService_Save_FullMethodName, GameServiceServer.Save)},
		{MethodName: "Load", Handler: unaryHandler(GameService_Load_FullMethodName, GameServiceServer.Load)},
		{MethodName: "GetState", Handler: unaryHandler(GameService_GetState_FullMethodName, GameServiceServer.GetState)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tactics/v1alpha1/game.proto",
}

// GameServiceClient is the client API for the game service
type GameServiceClient interface {
	NewGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Click(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Commit(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Enter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Leave(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Save(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Load(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetState(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client on cc
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc}
}

func (c *gameServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) NewGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_NewGame_FullMethodName, in, opts)
}

func (c *gameServiceClient) Click(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Click_FullMethodName, in, opts)
}

func (c *gameServiceClient) Commit(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Commit_FullMethodName, in, opts)
}

func (c *gameServiceClient) Enter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Enter_FullMethodName, in, opts)
}

func (c *gameServiceClient) Leave(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Leave_FullMethodName, in, opts)
}

func (c *gameServiceClient) Save(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Save_FullMethodName, in, opts)
}

func (c *gameServiceClient) Load(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_Load_FullMethodName, in, opts)
}

func (c *gameServiceClient) GetState(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GameService_GetState_FullMethodName, in, opts)
}
