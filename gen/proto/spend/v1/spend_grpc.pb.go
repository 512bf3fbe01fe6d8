// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: spend/v1/spend.proto

package spendpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SpendService_UploadCSV_FullMethodName           = "/spend.v1.SpendService/UploadCSV"
	SpendService_ScanInbox_FullMethodName           = "/spend.v1.SpendService/ScanInbox"
	SpendService_ListSubscriptions_FullMethodName   = "/spend.v1.SpendService/ListSubscriptions"
	SpendService_ListVendors_FullMethodName         = "/spend.v1.SpendService/ListVendors"
	SpendService_GetRenewalInfo_FullMethodName      = "/spend.v1.SpendService/GetRenewalInfo"
	SpendService_ExportSubscriptions_FullMethodName = "/spend.v1.SpendService/ExportSubscriptions"
)

// SpendServiceClient is the client API for SpendService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SpendService exposes the subscription detection pipeline: CSV uploads,
// inbox scans, and the derived renewal views.
type SpendServiceClient interface {
	UploadCSV(ctx context.Context, in *UploadCSVRequest, opts ...grpc.CallOption) (*UploadCSVResponse, error)
	ScanInbox(ctx context.Context, in *ScanInboxRequest, opts ...grpc.CallOption) (*ScanInboxResponse, error)
	ListSubscriptions(ctx context.Context, in *ListSubscriptionsRequest, opts ...grpc.CallOption) (*ListSubscriptionsResponse, error)
	ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error)
	GetRenewalInfo(ctx context.Context, in *GetRenewalInfoRequest, opts ...grpc.CallOption) (*GetRenewalInfoResponse, error)
	ExportSubscriptions(ctx context.Context, in *ExportSubscriptionsRequest, opts ...grpc.CallOption) (*ExportSubscriptionsResponse, error)
}

type spendServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSpendServiceClient(cc grpc.ClientConnInterface) SpendServiceClient {
	return &spendServiceClient{cc}
}

func (c *spendServiceClient) UploadCSV(ctx context.Context, in *UploadCSVRequest, opts ...grpc.CallOption) (*UploadCSVResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadCSVResponse)
	err := c.cc.Invoke(ctx, SpendService_UploadCSV_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spendServiceClient) ScanInbox(ctx context.Context, in *ScanInboxRequest, opts ...grpc.CallOption) (*ScanInboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanInboxResponse)
	err := c.cc.Invoke(ctx, SpendService_ScanInbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spendServiceClient) ListSubscriptions(ctx context.Context, in *ListSubscriptionsRequest, opts ...grpc.CallOption) (*ListSubscriptionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSubscriptionsResponse)
	err := c.cc.Invoke(ctx, SpendService_ListSubscriptions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spendServiceClient) ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVendorsResponse)
	err := c.cc.Invoke(ctx, SpendService_ListVendors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spendServiceClient) GetRenewalInfo(ctx context.Context, in *GetRenewalInfoRequest, opts ...grpc.CallOption) (*GetRenewalInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRenewalInfoResponse)
	err := c.cc.Invoke(ctx, SpendService_GetRenewalInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spendServiceClient) ExportSubscriptions(ctx context.Context, in *ExportSubscriptionsRequest, opts ...grpc.CallOption) (*ExportSubscriptionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSubscriptionsResponse)
	err := c.cc.Invoke(ctx, SpendService_ExportSubscriptions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SpendServiceServer is the server API for SpendService service.
// All implementations must embed UnimplementedSpendServiceServer
// for forward compatibility.
//
// SpendService exposes the subscription detection pipeline: CSV uploads,
// inbox scans, and the derived renewal views.
type SpendServiceServer interface {
	UploadCSV(context.Context, *UploadCSVRequest) (*UploadCSVResponse, error)
	ScanInbox(context.Context, *ScanInboxRequest) (*ScanInboxResponse, error)
	ListSubscriptions(context.Context, *ListSubscriptionsRequest) (*ListSubscriptionsResponse, error)
	ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error)
	GetRenewalInfo(context.Context, *GetRenewalInfoRequest) (*GetRenewalInfoResponse, error)
	ExportSubscriptions(context.Context, *ExportSubscriptionsRequest) (*ExportSubscriptionsResponse, error)
	mustEmbedUnimplementedSpendServiceServer()
}

// UnimplementedSpendServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSpendServiceServer struct{}

func (UnimplementedSpendServiceServer) UploadCSV(context.Context, *UploadCSVRequest) (*UploadCSVResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadCSV not implemented")
}
func (UnimplementedSpendServiceServer) ScanInbox(context.Context, *ScanInboxRequest) (*ScanInboxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanInbox not implemented")
}
func (UnimplementedSpendServiceServer) ListSubscriptions(context.Context, *ListSubscriptionsRequest) (*ListSubscriptionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSubscriptions not implemented")
}
func (UnimplementedSpendServiceServer) ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVendors not implemented")
}
func (UnimplementedSpendServiceServer) GetRenewalInfo(context.Context, *GetRenewalInfoRequest) (*GetRenewalInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRenewalInfo not implemented")
}
func (UnimplementedSpendServiceServer) ExportSubscriptions(context.Context, *ExportSubscriptionsRequest) (*ExportSubscriptionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportSubscriptions not implemented")
}
func (UnimplementedSpendServiceServer) mustEmbedUnimplementedSpendServiceServer() {}
func (UnimplementedSpendServiceServer) testEmbeddedByValue()                      {}

// UnsafeSpendServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SpendServiceServer will
// result in compilation errors.
type UnsafeSpendServiceServer interface {
	mustEmbedUnimplementedSpendServiceServer()
}

func RegisterSpendServiceServer(s grpc.ServiceRegistrar, srv SpendServiceServer) {
	// If the following call pancis, it indicates UnimplementedSpendServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SpendService_ServiceDesc, srv)
}

func _SpendService_UploadCSV_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadCSVRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).UploadCSV(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_UploadCSV_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).UploadCSV(ctx, req.(*UploadCSVRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpendService_ScanInbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanInboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).ScanInbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_ScanInbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).ScanInbox(ctx, req.(*ScanInboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpendService_ListSubscriptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSubscriptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).ListSubscriptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_ListSubscriptions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).ListSubscriptions(ctx, req.(*ListSubscriptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpendService_ListVendors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVendorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).ListVendors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_ListVendors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).ListVendors(ctx, req.(*ListVendorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpendService_GetRenewalInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRenewalInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).GetRenewalInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_GetRenewalInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).GetRenewalInfo(ctx, req.(*GetRenewalInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SpendService_ExportSubscriptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSubscriptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SpendServiceServer).ExportSubscriptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SpendService_ExportSubscriptions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SpendServiceServer).ExportSubscriptions(ctx, req.(*ExportSubscriptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SpendService_ServiceDesc is the grpc.ServiceDesc for SpendService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SpendService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "spend.v1.SpendService",
	HandlerType: (*SpendServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadCSV",
			Handler:    _SpendService_UploadCSV_Handler,
		},
		{
			MethodName: "ScanInbox",
			Handler:    _SpendService_ScanInbox_Handler,
		},
		{
			MethodName: "ListSubscriptions",
			Handler:    _SpendService_ListSubscriptions_Handler,
		},
		{
			MethodName: "ListVendors",
			Handler:    _SpendService_ListVendors_Handler,
		},
		{
			MethodName: "GetRenewalInfo",
			Handler:    _SpendService_GetRenewalInfo_Handler,
		},
		{
			MethodName: "ExportSubscriptions",
			Handler:    _SpendService_ExportSubscriptions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "spend/v1/spend.proto",
}
