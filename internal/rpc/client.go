package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a thin caller for the internal service, using the same raw codec
// as the server.
type Client struct {
	conn *grpc.ClientConn
}

func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(rawCodec{})),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("rpc dial: %w", err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) Authenticate(ctx context.Context, req *AuthRequest) (*AuthResponse, error) {
	out := &rawMsg{}
	if err := c.conn.Invoke(ctx, authenticateMethod, &rawMsg{data: encodeAuthRequest(req)}, out); err != nil {
		return nil, err
	}
	return decodeAuthResponse(out.data)
}

func (c *Client) ListAppointments(ctx context.Context, req *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	out := &rawMsg{}
	if err := c.conn.Invoke(ctx, listAppointmentsMethod, &rawMsg{data: encodeListAppointmentsRequest(req)}, out); err != nil {
		return nil, err
	}
	return decodeListAppointmentsResponse(out.data)
}
