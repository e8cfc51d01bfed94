package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// Names of the Hive service.
const (
	ServiceName  = "hivemind.v1.Hive"
	SubmitMethod = "/" + ServiceName + "/Submit"
)

// HiveServer is implemented by the transport handler. Bodies travel as raw
// bytes through RawCodec.
type HiveServer interface {
	Submit(ctx context.Context, body []byte) ([]byte, error)
}

// HiveServiceDesc describes hivemind.v1.Hive for grpc.Server.RegisterService.
var HiveServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HiveServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Submit",
			Handler:    submitHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hivemind/v1/hive",
}

func submitHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new([]byte)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HiveServer).Submit(ctx, *in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SubmitMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HiveServer).Submit(ctx, *req.(*[]byte))
	}
	return interceptor(ctx, in, info, handler)
}

// Register attaches h to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&HiveServiceDesc, h)
}
