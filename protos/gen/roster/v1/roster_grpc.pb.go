// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: roster/v1/roster.proto

package rosterv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	RosterService_GetDutyRoster_FullMethodName = "/roster.v1.RosterService/GetDutyRoster"
)

// RosterServiceClient is the client API for RosterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RosterService is exposed by the central crew system. The scheduler pulls
// duty windows from here when ROSTER_GRPC_ADDR is set; otherwise it reads
// its own roster_rules table.
type RosterServiceClient interface {
	GetDutyRoster(ctx context.Context, in *DutyRosterRequest, opts ...grpc.CallOption) (*DutyRosterResponse, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc}
}

func (c *rosterServiceClient) GetDutyRoster(ctx context.Context, in *DutyRosterRequest, opts ...grpc.CallOption) (*DutyRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DutyRosterResponse)
	err := c.cc.Invoke(ctx, RosterService_GetDutyRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RosterServiceServer is the server API for RosterService service.
// All implementations must embed UnimplementedRosterServiceServer
// for forward compatibility
//
// RosterService is exposed by the central crew system. The scheduler pulls
// duty windows from here when ROSTER_GRPC_ADDR is set; otherwise it reads
// its own roster_rules table.
type RosterServiceServer interface {
	GetDutyRoster(context.Context, *DutyRosterRequest) (*DutyRosterResponse, error)
	mustEmbedUnimplementedRosterServiceServer()
}

// UnimplementedRosterServiceServer must be embedded to have forward compatible implementations.
type UnimplementedRosterServiceServer struct {
}

func (UnimplementedRosterServiceServer) GetDutyRoster(context.Context, *DutyRosterRequest) (*DutyRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDutyRoster not implemented")
}
func (UnimplementedRosterServiceServer) mustEmbedUnimplementedRosterServiceServer() {}

// UnsafeRosterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RosterServiceServer will
// result in compilation errors.
type UnsafeRosterServiceServer interface {
	mustEmbedUnimplementedRosterServiceServer()
}

func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	s.RegisterService(&RosterService_ServiceDesc, srv)
}

func _RosterService_GetDutyRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DutyRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GetDutyRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GetDutyRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).GetDutyRoster(ctx, req.(*DutyRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RosterService_ServiceDesc is the grpc.ServiceDesc for RosterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RosterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "roster.v1.RosterService",
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDutyRoster",
			Handler:    _RosterService_GetDutyRoster_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "roster/v1/roster.proto",
}
