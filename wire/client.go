package wire

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/unixts"
)

// Client calls a remote timestamp service over gRPC using cramberry
// serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote timestamp service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(Codec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("unixts client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// Parse parses literal on the server.
func (c *Client) Parse(ctx context.Context, literal string) (unixts.Timestamp, error) {
	resp := new(Timestamp)
	if err := c.cc.Invoke(ctx, fullMethod("Parse"), &ParseRequest{Literal: literal}, resp); err != nil {
		return unixts.Timestamp{}, err
	}
	return resp.Timestamp()
}

// Add returns at+by computed on the server.
func (c *Client) Add(ctx context.Context, at unixts.Timestamp, by unixts.Duration) (unixts.Timestamp, error) {
	req := &AddRequest{At: FromTimestamp(at), By: FromDuration(by)}
	resp := new(Timestamp)
	if err := c.cc.Invoke(ctx, fullMethod("Add"), req, resp); err != nil {
		return unixts.Timestamp{}, err
	}
	return resp.Timestamp()
}

// Diff returns to-from computed on the server.
func (c *Client) Diff(ctx context.Context, from, to unixts.Timestamp) (unixts.Duration, error) {
	req := &DiffRequest{From: FromTimestamp(from), To: FromTimestamp(to)}
	resp := new(Duration)
	if err := c.cc.Invoke(ctx, fullMethod("Diff"), req, resp); err != nil {
		return unixts.Duration{}, err
	}
	return resp.Duration()
}
