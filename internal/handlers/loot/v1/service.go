package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgloot.loot.v1.LootService"

// Method names
const (
	MethodGenerateLoot        = "GenerateLoot"
	MethodRegenerateLoot      = "RegenerateLoot"
	MethodApplyLoot           = "ApplyLoot"
	MethodDiscardLoot         = "DiscardLoot"
	MethodTokenCreated        = "TokenCreated"
	MethodGetWorldSettings    = "GetWorldSettings"
	MethodUpdateWorldSettings = "UpdateWorldSettings"
	MethodExportSources       = "ExportSources"
	MethodImportSources       = "ImportSources"
)

// LootServiceServer is the server API for the loot service. Requests and
// responses are JSON shaped structs.
type LootServiceServer interface {
	GenerateLoot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RegenerateLoot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyLoot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DiscardLoot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TokenCreated(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWorldSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateWorldSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportSources(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportSources(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv LootServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LootServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(LootServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// LootServiceDesc describes the loot service for grpc.Server.RegisterService
var LootServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LootServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodGenerateLoot, LootServiceServer.GenerateLoot),
		unaryMethod(MethodRegenerateLoot, LootServiceServer.RegenerateLoot),
		unaryMethod(MethodApplyLoot, LootServiceServer.ApplyLoot),
		unaryMethod(MethodDiscardLoot, LootServiceServer.DiscardLoot),
		unaryMethod(MethodTokenCreated, LootServiceServer.TokenCreated),
		unaryMethod(MethodGetWorldSettings, LootServiceServer.GetWorldSettings),
		unaryMethod(MethodUpdateWorldSettings, LootServiceServer.UpdateWorldSettings),
		unaryMethod(MethodExportSources, LootServiceServer.ExportSources),
		unaryMethod(MethodImportSources, LootServiceServer.ImportSources),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loot/v1/loot_service",
}

// RegisterLootServiceServer registers srv on s
func RegisterLootServiceServer(s grpc.ServiceRegistrar, srv LootServiceServer) {
	s.RegisterService(&LootServiceDesc, srv)
}

// LootServiceClient calls the loot service
type LootServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLootServiceClient creates a client over an established connection
func NewLootServiceClient(cc grpc.ClientConnInterface) *LootServiceClient {
	return &LootServiceClient{cc: cc}
}

// Call invokes method with a JSON shaped request
func (c *LootServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
