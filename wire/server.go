package wire

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/unixts"
)

// Compile-time interface check.
var _ TimestampServiceServer = (*Server)(nil)

// Server implements TimestampServiceServer with the unixts value type.
type Server struct{}

// NewServer creates a timestamp service.
func NewServer() *Server {
	return &Server{}
}

// Register registers the service on an existing gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	RegisterTimestampServiceServer(gs, s)
}

// Serve starts a gRPC server on lis and blocks until it stops.
func (s *Server) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// Parse parses req.Literal.
func (s *Server) Parse(_ context.Context, req *ParseRequest) (*Timestamp, error) {
	ts, err := unixts.Parse(req.Literal)
	if err != nil {
		return nil, toStatus(err)
	}
	w := FromTimestamp(ts)
	return &w, nil
}

// Add moves req.At by req.By. Un-normalized nanos in either field are
// rejected with InvalidArgument.
func (s *Server) Add(_ context.Context, req *AddRequest) (*Timestamp, error) {
	at, err := req.At.Timestamp()
	if err != nil {
		return nil, toStatus(err)
	}
	by, err := req.By.Duration()
	if err != nil {
		return nil, toStatus(err)
	}
	ts, err := at.AddDuration(by)
	if err != nil {
		return nil, toStatus(err)
	}
	w := FromTimestamp(ts)
	return &w, nil
}

// Diff returns the exact span req.To-req.From.
func (s *Server) Diff(_ context.Context, req *DiffRequest) (*Duration, error) {
	from, err := req.From.Timestamp()
	if err != nil {
		return nil, toStatus(err)
	}
	to, err := req.To.Timestamp()
	if err != nil {
		return nil, toStatus(err)
	}
	w := FromDuration(to.Diff(from))
	return &w, nil
}

// toStatus maps unixts errors onto gRPC status codes.
func toStatus(err error) error {
	if _, ok := unixts.IsOverflow(err); ok {
		return status.Error(codes.OutOfRange, err.Error())
	}
	if _, ok := unixts.IsSyntax(err); ok || errors.Is(err, ErrInvalidNanos) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
