package relay

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Messages shown to the end user. The front end surfaces them verbatim.
const (
	msgEmptyKeyword       = "⚠️ 검색어를 입력해주세요."
	msgGatewayUnavailable = "❌ Eureka에서 Discovery Gateway를 찾을 수 없습니다. 서비스가 등록되었는지 확인해주세요."
	msgGatewayUnreachable = "❌ API Gateway(%s)에 연결할 수 없습니다. 서버가 실행 중인지 확인해주세요."
	msgServerError        = "서버 오류가 발생했습니다."
	msgUnexpectedPrefix   = "서버 오류: "
)

// Kind classifies why a search did not succeed.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindRegistryUnavailable
	KindUpstream
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRegistryUnavailable:
		return "registry_unavailable"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// Failure is the error every non-success path of Search returns.
type Failure struct {
	Kind    Kind
	Code    int    // HTTP status mirrored into the envelope
	Message string // user-facing text
	Err     error  // underlying cause, if any
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Kind.String() + ": " + f.Message + ": " + f.Err.Error()
	}
	return f.Kind.String() + ": " + f.Message
}

func (f *Failure) Unwrap() error { return f.Err }

// Envelope is the uniform {Code, message, data} body returned to callers.
type Envelope struct {
	Code    int             `json:"Code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// EnvelopeOf converts any error into an envelope with null data. Errors
// that are not a *Failure are reported as unexpected.
func EnvelopeOf(err error) Envelope {
	var f *Failure
	if !errors.As(err, &f) {
		f = unexpected(err)
	}
	return Envelope{Code: f.Code, Message: f.Message}
}

// AsFailure returns err as a *Failure, classifying foreign errors as unexpected.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return unexpected(err)
}

func unexpected(err error) *Failure {
	return &Failure{
		Kind:    KindUnexpected,
		Code:    http.StatusInternalServerError,
		Message: msgUnexpectedPrefix + err.Error(),
		Err:     err,
	}
}
