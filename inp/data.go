// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from fluid description and manifold files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ReadData decodes a file into v according to its extension
//  Supported: .json, .yaml, .yml and .toml
func ReadData(fn string, v interface{}) (err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read file %q:\n%v", fn, err)
	}
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	case ".toml":
		err = toml.Unmarshal(b, v)
	default:
		return chk.Err("extension %q of file %q is not supported; options are .json, .yaml, .yml and .toml", ext, fn)
	}
	if err != nil {
		return chk.Err("cannot decode file %q:\n%v", fn, err)
	}
	return
}

// WriteData encodes v into a file according to its extension
func WriteData(fn string, v interface{}) (err error) {
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".json":
		b, err = json.MarshalIndent(v, "", "  ")
	case ".yaml", ".yml":
		b, err = yaml.Marshal(v)
	case ".toml":
		b, err = toml.Marshal(v)
	default:
		return chk.Err("extension %q of file %q is not supported; options are .json, .yaml, .yml and .toml", ext, fn)
	}
	if err != nil {
		return chk.Err("cannot encode file %q:\n%v", fn, err)
	}
	if dir := filepath.Dir(fn); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	if err = os.WriteFile(fn, b, 0o644); err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}
