// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordTypeFromCode(t *testing.T) {
	tests := []struct {
		name string
		code uint16
		want RecordType
		err  error
	}{
		{"A", 1, RecordTypeA, nil},
		{"NS", 2, RecordTypeNS, nil},
		{"CNAME", 5, RecordTypeCNAME, nil},
		{"PTR", 12, RecordTypePTR, nil},
		{"MX", 15, RecordTypeMX, nil},
		{"AAAA", 28, RecordTypeAAAA, nil},
		{"TXT", 16, 0, ErrUnsupportedCode},
		{"Zero", 0, 0, ErrUnsupportedCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecordTypeFromCode(tt.code)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RecordType
		err   error
	}{
		{"UpperCase", "A", RecordTypeA, nil},
		{"LowerCase", "cname", RecordTypeCNAME, nil},
		{"MixedCase", "aAaA", RecordTypeAAAA, nil},
		{"Unknown", "TXT", 0, ErrUnsupportedCode},
		{"Empty", "", 0, ErrUnsupportedCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecordType(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRecordTypeString(t *testing.T) {
	require.Equal(t, "A", RecordTypeA.String())
	require.Equal(t, "AAAA", RecordTypeAAAA.String())
	require.Equal(t, "TYPE99", RecordType(99).String())
}

func TestClassFromCode(t *testing.T) {
	class, err := ClassFromCode(1)
	require.NoError(t, err)
	require.Equal(t, ClassINET, class)

	_, err = ClassFromCode(3)
	require.ErrorIs(t, err, ErrUnsupportedCode)
}

func TestClassString(t *testing.T) {
	require.Equal(t, "IN", ClassINET.String())
	require.Equal(t, "CLASS4", Class(4).String())
}

func TestRcodeText(t *testing.T) {
	tests := []struct {
		name  string
		rcode uint8
		want  string
	}{
		{"NoError", RcodeNoError, "NOERROR"},
		{"NXDomain", RcodeNXDomain, "NXDOMAIN"},
		{"NotImplemented", RcodeNotImplemented, "NOTIMP"},
		{"Other", 9, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RcodeText(tt.rcode))
		})
	}
}
