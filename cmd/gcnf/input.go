// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// path2Reader opens p, with "-" meaning stdin.  Compressed inputs
// are not supported.
func path2Reader(p string, stdin io.Reader) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(stdin), nil
	}
	if strings.HasSuffix(p, ".gz") || strings.HasSuffix(p, ".bz2") || strings.HasSuffix(p, ".xz") {
		return nil, errors.Errorf("%s: compressed inputs are not supported", p)
	}
	st, e := os.Stat(p)
	if e != nil {
		return nil, e
	}
	if st.IsDir() {
		return nil, errors.Errorf("%s is a directory", p)
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	return f, nil
}
