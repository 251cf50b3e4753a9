package rpc

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clinic-management-api/internal/auth"
	"clinic-management-api/internal/middleware"
	"clinic-management-api/internal/store"
)

// Service is the internal gRPC surface for service callers: the same
// credential check and role-scoped appointment views that the HTTP API
// serves, without the JSON boundary.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

func NewService(st *store.Store, log zerolog.Logger) *Service {
	return &Service{store: st, log: log}
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal; the handlers do
// the protowire work themselves.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return "raw" }

const (
	authenticateMethod     = "/clinic.v1.ClinicService/Authenticate"
	listAppointmentsMethod = "/clinic.v1.ClinicService/ListAppointments"
)

type clinicServer interface {
	Authenticate(ctx context.Context, req *AuthRequest) (*AuthResponse, error)
	ListAppointments(ctx context.Context, req *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: "clinic.v1.ClinicService",
	HandlerType: (*clinicServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Authenticate", Handler: authenticateHandler},
		{MethodName: "ListAppointments", Handler: listAppointmentsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clinic/v1/clinic.proto",
}

// NewServer builds a gRPC server with the raw codec forced and the
// credential check rate-limited by the shared limiter.
func NewServer(st *store.Store, log zerolog.Logger, rl *middleware.RateLimiter) *grpc.Server {
	limited := map[string]bool{authenticateMethod: true}
	srv := grpc.NewServer(
		grpc.ForceServerCodec(rawCodec{}),
		grpc.ChainUnaryInterceptor(middleware.UnaryLimit(rl, limited)),
	)
	srv.RegisterService(&serviceDesc, NewService(st, log))
	return srv
}

func authenticateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(rawMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	req, err := decodeAuthRequest(in.data)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "parse error")
	}
	h := func(ctx context.Context, req any) (any, error) {
		resp, err := srv.(clinicServer).Authenticate(ctx, req.(*AuthRequest))
		if err != nil {
			return nil, err
		}
		return &rawMsg{data: encodeAuthResponse(resp)}, nil
	}
	if interceptor == nil {
		return h(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: authenticateMethod}
	return interceptor(ctx, req, info, h)
}

func listAppointmentsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(rawMsg)
	if err := dec(in); err != nil {
		return nil, err
	}
	req, err := decodeListAppointmentsRequest(in.data)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "parse error")
	}
	h := func(ctx context.Context, req any) (any, error) {
		resp, err := srv.(clinicServer).ListAppointments(ctx, req.(*ListAppointmentsRequest))
		if err != nil {
			return nil, err
		}
		return &rawMsg{data: encodeListAppointmentsResponse(resp)}, nil
	}
	if interceptor == nil {
		return h(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listAppointmentsMethod}
	return interceptor(ctx, req, info, h)
}

func (s *Service) Authenticate(ctx context.Context, req *AuthRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password required")
	}

	cred, err := s.store.CredentialByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, status.Error(codes.Unauthenticated, "invalid login")
		}
		s.log.Error().Err(err).Msg("credential lookup")
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !auth.CheckPassword(cred.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid login")
	}

	return &AuthResponse{Status: "success", Role: cred.Role, Username: cred.Username}, nil
}

func (s *Service) ListAppointments(ctx context.Context, req *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	resp := &ListAppointmentsResponse{}

	switch {
	case req.Email != "":
		views, err := s.store.AppointmentsByPatientEmail(ctx, req.Email)
		if err != nil {
			s.log.Error().Err(err).Msg("patient view")
			return nil, status.Error(codes.Internal, "internal error")
		}
		for _, v := range views {
			resp.Rows = append(resp.Rows, AppointmentRow{
				ID: v.ID, Doctor: v.Doctor, Date: v.Date, Time: v.Time,
			})
		}
	case req.Doctor != "":
		views, err := s.store.AppointmentsByDoctorName(ctx, req.Doctor)
		if err != nil {
			s.log.Error().Err(err).Msg("doctor view")
			return nil, status.Error(codes.Internal, "internal error")
		}
		for _, v := range views {
			resp.Rows = append(resp.Rows, AppointmentRow{
				ID: v.ID, PatientID: v.PatientID, Patient: v.Patient,
				Age: int64(v.Age), Gender: v.Gender, Height: v.Height, Weight: v.Weight,
				Date: v.Date, Time: v.Time,
			})
		}
	default:
		views, err := s.store.AllAppointments(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("admin view")
			return nil, status.Error(codes.Internal, "internal error")
		}
		for _, v := range views {
			resp.Rows = append(resp.Rows, AppointmentRow{
				ID: v.ID, Patient: v.Patient, Doctor: v.Doctor, Date: v.Date, Time: v.Time,
			})
		}
	}

	return resp, nil
}
