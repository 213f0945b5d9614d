package weather

// Status is the tag of a PipelineState
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PipelineState is exactly one of Idle, Loading, Success(model) or Failure(message).
// Values are built only through Idle, Loading, Succeeded and Failed.
type PipelineState struct {
	status  Status
	model   *DisplayModel
	message string
}

func Idle() PipelineState {
	return PipelineState{status: StatusIdle}
}

func Loading() PipelineState {
	return PipelineState{status: StatusLoading}
}

func Succeeded(model *DisplayModel) PipelineState {
	return PipelineState{status: StatusSuccess, model: model}
}

func Failed(message string) PipelineState {
	return PipelineState{status: StatusFailure, message: message}
}

func (s PipelineState) Status() Status {
	return s.status
}

func (s PipelineState) IsLoading() bool {
	return s.status == StatusLoading
}

// Model returns the display model; ok is false unless the state is Success.
func (s PipelineState) Model() (*DisplayModel, bool) {
	return s.model, s.status == StatusSuccess
}

// Message returns the failure message; ok is false unless the state is Failure.
func (s PipelineState) Message() (string, bool) {
	return s.message, s.status == StatusFailure
}

// StateView is the serialized form of a PipelineState
type StateView struct {
	Status  Status        `json:"status"`
	Loading bool          `json:"loading"`
	Weather *DisplayModel `json:"weather,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// View flattens the state for rendering and JSON responses
func (s PipelineState) View() StateView {
	return StateView{
		Status:  s.status,
		Loading: s.status == StatusLoading,
		Weather: s.model,
		Error:   s.message,
	}
}
