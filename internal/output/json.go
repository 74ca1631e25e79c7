package output

import (
	"encoding/json"
	"io"

	"github.com/vrmiguel/lipid/pkg/model"
)

func ToJSON(r model.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func WriteJSON(w io.Writer, r model.Report) error {
	s, err := ToJSON(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
