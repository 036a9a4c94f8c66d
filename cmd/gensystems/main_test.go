package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewArity(t *testing.T) {
	tests := []struct {
		n              int
		wantTypeParams string
		wantExec       string
		wantCall       string
	}{
		{0, "", "", ""},
		{1, ", Q1 any, P1 queryPtr[Q1]", "Q1 any, P1 queryPtr[Q1]", "p1"},
		{2, ", Q1 any, P1 queryPtr[Q1], Q2 any, P2 queryPtr[Q2]", "Q1 any, P1 queryPtr[Q1], Q2 any, P2 queryPtr[Q2]", "p1, p2"},
	}
	for _, tt := range tests {
		a := newArity(tt.n)
		if a.TypeParams != tt.wantTypeParams {
			t.Errorf("arity %d TypeParams = %q, want %q", tt.n, a.TypeParams, tt.wantTypeParams)
		}
		if a.ExecTypeParams != tt.wantExec {
			t.Errorf("arity %d ExecTypeParams = %q, want %q", tt.n, a.ExecTypeParams, tt.wantExec)
		}
		if a.CallArgs != tt.wantCall {
			t.Errorf("arity %d CallArgs = %q, want %q", tt.n, a.CallArgs, tt.wantCall)
		}
	}
}

func TestGenerate(t *testing.T) {
	src, err := generate(3)
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if !bytes.HasPrefix(src, []byte("// Code generated by gensystems. DO NOT EDIT.")) {
		t.Errorf("missing generated header")
	}
	for _, want := range []string{
		"func Run0[O any](w *World, system func() O) (O, error)",
		"func Exec0(w *World, system func()) error",
		"func Run3[O any, Q1 any, P1 queryPtr[Q1], Q2 any, P2 queryPtr[Q2], Q3 any, P3 queryPtr[Q3]]",
		`return fmt.Errorf("system parameter 3: %w", err)`,
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(string(src), "Run4") {
		t.Errorf("output exceeds the requested arity")
	}
}
