package rpc

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Messages for clinic.v1.ClinicService. The service is small enough that the
// proto3 wire format is written and read by hand with protowire; there is no
// generated code to keep in sync.

type AuthRequest struct {
	Username string // field 1
	Password string // field 2
}

type AuthResponse struct {
	Status   string // field 1
	Role     string // field 2
	Username string // field 3
}

type ListAppointmentsRequest struct {
	Email  string // field 1: patient view
	Doctor string // field 2: doctor view; both empty = admin view
}

// AppointmentRow is the union of the three view shapes; fields that do not
// apply to the requested view are left at their zero value and omitted from
// the wire.
type AppointmentRow struct {
	ID        int64   // field 1
	Patient   string  // field 2
	Doctor    string  // field 3
	Date      string  // field 4
	Time      string  // field 5
	PatientID int64   // field 6
	Age       int64   // field 7
	Gender    string  // field 8
	Height    float64 // field 9
	Weight    float64 // field 10
}

type ListAppointmentsResponse struct {
	Rows []AppointmentRow // repeated field 1
}

func appendString(out []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendString(out, s)
}

func appendVarint(out []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	return protowire.AppendVarint(out, uint64(v))
}

func appendDouble(out []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(out, math.Float64bits(v))
}

func decodeAuthRequest(b []byte) (*AuthRequest, error) {
	req := &AuthRequest{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType && (num == 1 || num == 2) {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			if num == 1 {
				req.Username = string(v)
			} else {
				req.Password = string(v)
			}
			b = b[n:]
		} else {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return req, nil
}

func encodeAuthResponse(resp *AuthResponse) []byte {
	var out []byte
	out = appendString(out, 1, resp.Status)
	out = appendString(out, 2, resp.Role)
	out = appendString(out, 3, resp.Username)
	return out
}

func decodeListAppointmentsRequest(b []byte) (*ListAppointmentsRequest, error) {
	req := &ListAppointmentsRequest{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType && (num == 1 || num == 2) {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			if num == 1 {
				req.Email = string(v)
			} else {
				req.Doctor = string(v)
			}
			b = b[n:]
		} else {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return req, nil
}

func encodeAppointmentRow(out []byte, num protowire.Number, r *AppointmentRow) []byte {
	var inner []byte
	inner = appendVarint(inner, 1, r.ID)
	inner = appendString(inner, 2, r.Patient)
	inner = appendString(inner, 3, r.Doctor)
	inner = appendString(inner, 4, r.Date)
	inner = appendString(inner, 5, r.Time)
	inner = appendVarint(inner, 6, r.PatientID)
	inner = appendVarint(inner, 7, r.Age)
	inner = appendString(inner, 8, r.Gender)
	inner = appendDouble(inner, 9, r.Height)
	inner = appendDouble(inner, 10, r.Weight)

	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendBytes(out, inner)
}

func encodeListAppointmentsResponse(resp *ListAppointmentsResponse) []byte {
	var out []byte
	for i := range resp.Rows {
		out = encodeAppointmentRow(out, 1, &resp.Rows[i])
	}
	return out
}

func decodeAppointmentRow(b []byte) (AppointmentRow, error) {
	var r AppointmentRow
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return r, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case typ == protowire.VarintType && (num == 1 || num == 6 || num == 7):
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return r, protowire.ParseError(n)
			}
			switch num {
			case 1:
				r.ID = int64(v)
			case 6:
				r.PatientID = int64(v)
			case 7:
				r.Age = int64(v)
			}
			b = b[n:]
		case typ == protowire.BytesType && (num == 2 || num == 3 || num == 4 || num == 5 || num == 8):
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return r, protowire.ParseError(n)
			}
			switch num {
			case 2:
				r.Patient = string(v)
			case 3:
				r.Doctor = string(v)
			case 4:
				r.Date = string(v)
			case 5:
				r.Time = string(v)
			case 8:
				r.Gender = string(v)
			}
			b = b[n:]
		case typ == protowire.Fixed64Type && (num == 9 || num == 10):
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return r, protowire.ParseError(n)
			}
			if num == 9 {
				r.Height = math.Float64frombits(v)
			} else {
				r.Weight = math.Float64frombits(v)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return r, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return r, nil
}

func decodeListAppointmentsResponse(b []byte) (*ListAppointmentsResponse, error) {
	resp := &ListAppointmentsResponse{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			row, err := decodeAppointmentRow(v)
			if err != nil {
				return nil, err
			}
			resp.Rows = append(resp.Rows, row)
			b = b[n:]
		} else {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return resp, nil
}

func encodeAuthRequest(req *AuthRequest) []byte {
	var out []byte
	out = appendString(out, 1, req.Username)
	out = appendString(out, 2, req.Password)
	return out
}

func decodeAuthResponse(b []byte) (*AuthResponse, error) {
	resp := &AuthResponse{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 3 {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			switch num {
			case 1:
				resp.Status = string(v)
			case 2:
				resp.Role = string(v)
			case 3:
				resp.Username = string(v)
			}
			b = b[n:]
		} else {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return resp, nil
}

func encodeListAppointmentsRequest(req *ListAppointmentsRequest) []byte {
	var out []byte
	out = appendString(out, 1, req.Email)
	out = appendString(out, 2, req.Doctor)
	return out
}
