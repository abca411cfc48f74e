package handler

import (
	"net/http"

	"gopkg.in/yaml.v3"
)

type yamlResponse struct {
	status int
	body   any
}

func (y yamlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	out, err := yaml.Marshal(y.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(y.status)
	_, err = w.Write(out)
	return err
}

// YAML writes v encoded as YAML with status 200. v is marshaled before any
// header is written.
func YAML(v any) Response {
	return yamlResponse{status: http.StatusOK, body: v}
}
