package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"os"
	"strings"

	"github.com/tutils/lcg/crypt/xor"
)

var (
	xorCrypt = xor.NewCrypt(33280939)
)

// encodeCmdline packs os.Args[1:] into one "@"-prefixed argument that
// Execute can unpack, so a long invocation can be replayed verbatim.
func encodeCmdline() (string, error) {
	return encodeArgs(os.Args[1:])
}

func encodeArgs(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawStdEncoding, w1)
	w3 := xorCrypt.NewEncoder(w2)
	w4 := gob.NewEncoder(w3)
	if err := w4.Encode(args); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func decodeCmdline(s string) error {
	args, err := decodeArgs(s)
	if err != nil {
		return err
	}
	os.Args = append(os.Args[:1], args...)
	return nil
}

func decodeArgs(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawStdEncoding, r1)
	r3 := xorCrypt.NewDecoder(r2)
	r4 := gob.NewDecoder(r3)
	var args []string
	if err := r4.Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}
