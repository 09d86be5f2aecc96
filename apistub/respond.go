package apistub

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/praxis-dev/client/httpjson"
	"github.com/praxis-dev/client/logger"
)

func writeJson(w http.ResponseWriter, status int, data any) {
	httpjson.WriteJson(w, status, data)
}

func handleError(r *http.Request, w http.ResponseWriter, err error) {
	httpjson.HandleError(logger.FromContext(r.Context()), w, err)
}

func decodeJson(body io.Reader, out any) error {
	return json.NewDecoder(body).Decode(out)
}
