package utils

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	var out bytes.Buffer
	err = stdjson.Indent(&out, buffer, "", "  ")
	if err != nil {
		fmt.Println(err)
	}

	return out.String()
}
