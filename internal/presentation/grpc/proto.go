package grpc

// proto.go defines the gRPC server interface derived from
// leadscore/v1/leadscore.proto. It serves as a stand-in for buf-generated
// code; once `buf generate` is run, replace this file with the import from
// github.com/asah-capstone-a25/leadscore/api/gen/go/leadscore/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LeadScoringServer is the server API for LeadScoringService.
type LeadScoringServer interface {
	ScoreLead(context.Context, *ScoreLeadRequest) (*ScoreLeadResponse, error)
	GetModelInfo(context.Context, *GetModelInfoRequest) (*GetModelInfoResponse, error)
	mustEmbedUnimplementedLeadScoringServer()
}

// UnimplementedLeadScoringServer provides forward-compatible default implementations.
type UnimplementedLeadScoringServer struct{}

func (UnimplementedLeadScoringServer) ScoreLead(context.Context, *ScoreLeadRequest) (*ScoreLeadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreLead not implemented")
}
func (UnimplementedLeadScoringServer) GetModelInfo(context.Context, *GetModelInfoRequest) (*GetModelInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetModelInfo not implemented")
}
func (UnimplementedLeadScoringServer) mustEmbedUnimplementedLeadScoringServer() {}

// RegisterLeadScoringServer registers the LeadScoringServer with the gRPC server.
func RegisterLeadScoringServer(s *grpclib.Server, srv LeadScoringServer) {
	s.RegisterService(&_LeadScoring_serviceDesc, srv)
}

var _LeadScoring_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "leadscore.v1.LeadScoringService",
	HandlerType: (*LeadScoringServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreLead", Handler: _LeadScoring_ScoreLead_Handler},
		{MethodName: "GetModelInfo", Handler: _LeadScoring_GetModelInfo_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _LeadScoring_ScoreLead_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreLeadRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(LeadScoringServer).ScoreLead(ctx, req)
}

func _LeadScoring_GetModelInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetModelInfoRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(LeadScoringServer).GetModelInfo(ctx, req)
}
