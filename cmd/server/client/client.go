// Package client provides commands that play a game on a running server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/vadim010975/retro-tactics/internal/handlers/tactics/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	boardSize  int
	rawOutput  bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play a game against a running server",
	Long:  `Client commands send gRPC requests to the tactics server and print the board after each one.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().IntVar(&boardSize, "board-size", 8, "Board size used when printing")
	ClientCmd.PersistentFlags().BoolVar(&rawOutput, "json", false, "Print the raw response")

	ClientCmd.AddCommand(newGameCmd)
	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(saveCmd)
	ClientCmd.AddCommand(loadCmd)
	ClientCmd.AddCommand(cellCommand("click", "Select, move or attack on a cell", v1alpha1.GameServiceClient.Click))
	ClientCmd.AddCommand(cellCommand("commit", "Attack the enemy on a cell every turn", v1alpha1.GameServiceClient.Commit))
	ClientCmd.AddCommand(cellCommand("enter", "Show what hovering a cell reveals", v1alpha1.GameServiceClient.Enter))
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (v1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

type rpc func(v1alpha1.GameServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// call sends one request and prints the answer
func call(method rpc, fields map[string]any) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := method(client, ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if rawOutput {
		data, err := json.MarshalIndent(resp.AsMap(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	return printResponse(resp)
}
