package bridge

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shellbridge/shellbridge/internal/cmderr"
)

// maxArgsSize limits the size of the JSON arguments of a single command.
const maxArgsSize = 1 << 20

type errorResponse struct {
	Error httpError `json:"error"`
}

type httpError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newErrorResponse(code int, message string) errorResponse {
	return errorResponse{
		Error: httpError{
			Code:    code,
			Message: message,
		},
	}
}

type listCommandsResponse struct {
	Commands []string `json:"commands"`
}

func (s *Server) listCommands(r *http.Request) jsonResponse {
	return jsonResponse{data: listCommandsResponse{Commands: s.Commands()}}
}

func (s *Server) invokeCommand(r *http.Request) jsonResponse {
	name := mux.Vars(r)["command"]
	if !isJSONRequest(r) {
		return jsonResponse{
			status: http.StatusUnsupportedMediaType,
			err:    cmderr.InvalidInput(nil, "arguments for %s must be sent as application/json", name),
		}
	}
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxArgsSize))
	if err != nil {
		return jsonResponse{err: cmderr.InvalidInput(err, "failed to read arguments for %s", name)}
	}
	result, err := s.Invoke(r.Context(), name, json.RawMessage(body))
	if err != nil {
		return jsonResponse{err: err}
	}
	return jsonResponse{data: result}
}
