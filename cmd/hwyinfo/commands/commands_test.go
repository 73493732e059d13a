// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajroetker/simdbatch/hwy"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"Best: " + hwy.BestID().String(), "Enabled Tags", "generic", "Host Cpu"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output lacks %q:\n%s", want, out)
		}
	}
}

func TestKernels(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{"default_type", []string{"kernels", "--arch", "generic"}, []string{"Float32 Kernels On Generic", "Sqrt", "emulated"}, false},
		{"split", []string{"kernels", "--type", "int32", "--arch", "avx512"}, []string{"Int32 Kernels On Avx512", "ReduceAdd"}, false},
		{"conversions", []string{"kernels", "--arch", "generic"}, []string{"float32 -> float64", "slow"}, false},
		{"bad_arch", []string{"kernels", "--arch", "mmx"}, nil, true},
		{"bad_type", []string{"kernels", "--type", "complex64"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output lacks %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--size", "1000", "--rounds", "2", "--workers", "2")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{"transform/" + hwy.BestID().String(), "parallel-transform/generic", "sum/generic", "count/"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output lacks %q:\n%s", want, out)
		}
	}
}

func TestParseArch(t *testing.T) {
	for _, id := range hwy.AllArchs() {
		got, err := parseArch(id.String())
		if err != nil || got != id {
			t.Errorf("parseArch(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := parseArch("sse9"); err == nil {
		t.Error("parseArch(\"sse9\") succeeded")
	}
}

func TestCrossCheck(t *testing.T) {
	var best hwy.Best
	in := hwy.MakeAligned[float32](1001, best.Width())[1:]
	for i := range in {
		in[i] = float32(i % 1000)
	}
	if err := crossCheck(in); err != nil {
		t.Errorf("crossCheck: %v", err)
	}
}
