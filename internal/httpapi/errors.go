package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func errFileTooLarge(path string, size, limit int64) error {
	return fmt.Errorf("file %q is %d bytes, exceeds the %d byte limit", path, size, limit)
}

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
