package wire

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/unixts.v1.TimestampService"

// ParseRequest carries a timestamp literal such as "1335020400.25".
type ParseRequest struct {
	Literal string `cramberry:"1"`
}

// AddRequest asks for At moved by the signed span By.
type AddRequest struct {
	At Timestamp `cramberry:"1"`
	By Duration  `cramberry:"2"`
}

// DiffRequest asks for the span To-From.
type DiffRequest struct {
	From Timestamp `cramberry:"1"`
	To   Timestamp `cramberry:"2"`
}

// TimestampServiceServer is the server-side interface for the
// timestamp gRPC service.
type TimestampServiceServer interface {
	Parse(context.Context, *ParseRequest) (*Timestamp, error)
	Add(context.Context, *AddRequest) (*Timestamp, error)
	Diff(context.Context, *DiffRequest) (*Duration, error)
}

// RegisterTimestampServiceServer registers srv on a gRPC server.
func RegisterTimestampServiceServer(s *grpc.Server, srv TimestampServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerParse(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ParseRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimestampServiceServer).Parse(ctx, req)
}

func handlerAdd(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(AddRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimestampServiceServer).Add(ctx, req)
}

func handlerDiff(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(DiffRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimestampServiceServer).Diff(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TimestampServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Parse", Handler: handlerParse},
		{MethodName: "Add", Handler: handlerAdd},
		{MethodName: "Diff", Handler: handlerDiff},
	},
	Metadata: "github.com/blockberries/unixts/v1/service.cram",
}
