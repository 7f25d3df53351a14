// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"net/netip"
	"testing"

	"github.com/bassosimone/runtimex"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	query := NewQuery("www.example.com", RecordTypeAAAA)

	require.False(t, query.Header.QR)
	require.True(t, query.Header.RD)
	require.Equal(t, uint16(1), query.Header.QDCount)
	require.Equal(t, uint16(0), query.Header.ANCount)
	require.Len(t, query.Questions, 1)
	require.Equal(t, "www.example.com", query.Questions[0].Name)
	require.Equal(t, RecordTypeAAAA, query.Questions[0].Type)
	require.Equal(t, ClassINET, query.Questions[0].Class)
	require.Empty(t, query.Answers)
}

func TestNewResponse(t *testing.T) {
	query := NewQuery("example.com", RecordTypeA)
	query.Header.ID = 4242

	resp := NewResponse(query)

	require.True(t, resp.Header.QR)
	require.True(t, resp.Header.RA)
	require.Equal(t, uint16(4242), resp.Header.ID)
	require.Equal(t, uint16(1), resp.Header.QDCount)
	require.Equal(t, query.Questions, resp.Questions)
	require.Empty(t, resp.Answers)

	// the response owns its question slice
	resp.Questions[0].Name = "changed.example"
	require.Equal(t, "example.com", query.Questions[0].Name)
}

func TestMessageRoundTripQuery(t *testing.T) {
	query := NewQuery("www.example.com", RecordTypeA)
	raw := runtimex.PanicOnError1(query.ToBytes())

	parsed, err := MessageFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, query, parsed)
}

func TestMessageRoundTripResponse(t *testing.T) {
	msg := &Message{
		Header: Header{
			ID:      0xABCD,
			QR:      true,
			RD:      true,
			RA:      true,
			QDCount: 1,
			ANCount: 2,
		},
		Questions: []Question{NewQuestion("localhost", RecordTypeA)},
		Answers: []Record{
			NewARecord("localhost", netip.MustParseAddr("127.0.0.1"), 300),
			NewARecord("localhost", netip.MustParseAddr("127.0.0.2"), 300),
		},
	}
	raw := runtimex.PanicOnError1(msg.ToBytes())

	parsed, err := MessageFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, msg, parsed)
}

func TestMessageFromBytesTooShort(t *testing.T) {
	_, err := MessageFromBytes([]byte{0x12, 0x34})
	require.ErrorIs(t, err, ErrParse)
}

func TestMessageFromBytesQuestionTruncated(t *testing.T) {
	header := Header{ID: 1, QDCount: 1}

	_, err := MessageFromBytes(header.ToBytes())
	require.ErrorIs(t, err, ErrParse)
}

func TestMessageFromBytesQuestionUnsupportedType(t *testing.T) {
	msg := &Message{
		Header:    Header{ID: 1, QDCount: 1},
		Questions: []Question{{Name: "example.com", Type: RecordType(16), Class: ClassINET}},
	}
	raw := runtimex.PanicOnError1(msg.ToBytes())

	_, err := MessageFromBytes(raw)
	require.ErrorIs(t, err, ErrUnsupportedCode)
}

// twoAnswerResponseBytes returns the wire encoding of a response
// carrying two A answers for localhost. Each answer record takes
// exactly 25 bytes on the wire.
func twoAnswerResponseBytes() []byte {
	msg := &Message{
		Header: Header{
			ID:      7,
			QR:      true,
			RA:      true,
			QDCount: 1,
			ANCount: 2,
		},
		Questions: []Question{NewQuestion("localhost", RecordTypeA)},
		Answers: []Record{
			NewARecord("localhost", netip.MustParseAddr("127.0.0.1"), 300),
			NewARecord("localhost", netip.MustParseAddr("127.0.0.2"), 300),
		},
	}
	return runtimex.PanicOnError1(msg.ToBytes())
}

func TestMessageFromBytesTruncatedAnswers(t *testing.T) {
	raw := twoAnswerResponseBytes()

	// cut inside the second record's fixed fields
	parsed, err := MessageFromBytes(raw[:len(raw)-8])
	require.NoError(t, err)
	require.Len(t, parsed.Questions, 1)
	require.Len(t, parsed.Answers, 1)
	require.Equal(t, []byte{127, 0, 0, 1}, parsed.Answers[0].Data)
	require.Equal(t, uint16(2), parsed.Header.ANCount)
}

func TestMessageFromBytesAnswerNameError(t *testing.T) {
	raw := twoAnswerResponseBytes()

	// cut inside the second record's name
	_, err := MessageFromBytes(raw[:len(raw)-20])
	require.ErrorIs(t, err, ErrParse)
}

func TestMessageFromBytesAnswersCutAtRecordBoundary(t *testing.T) {
	raw := twoAnswerResponseBytes()

	// cut exactly where the second record would begin
	parsed, err := MessageFromBytes(raw[:len(raw)-25])
	require.NoError(t, err)
	require.Len(t, parsed.Answers, 1)
}

func TestMessageFromBytesSkipsUnknownAnswerTypes(t *testing.T) {
	msg := &Message{
		Header: Header{
			ID:      7,
			QR:      true,
			QDCount: 1,
			ANCount: 3,
		},
		Questions: []Question{NewQuestion("example.com", RecordTypeA)},
		Answers: []Record{
			NewARecord("example.com", netip.MustParseAddr("93.184.216.34"), 300),
			{
				Name:  "example.com",
				Type:  RecordType(16), // TXT, which we do not support
				Class: ClassINET,
				TTL:   300,
				Data:  []byte("v=spf1 -all"),
			},
			NewARecord("www.example.com", netip.MustParseAddr("93.184.216.34"), 300),
		},
	}
	raw := runtimex.PanicOnError1(msg.ToBytes())

	parsed, err := MessageFromBytes(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Answers, 2)
	require.Equal(t, "example.com", parsed.Answers[0].Name)
	require.Equal(t, "www.example.com", parsed.Answers[1].Name)
}

func TestValidateResponse(t *testing.T) {
	newQuery := func() *Message {
		query := NewQuery("example.com", RecordTypeA)
		query.Header.ID = 7
		return query
	}

	tests := []struct {
		name    string
		mutate  func(resp *Message)
		wantErr bool
	}{
		{
			name:    "Valid",
			mutate:  func(resp *Message) {},
			wantErr: false,
		},
		{
			name: "NotAResponse",
			mutate: func(resp *Message) {
				resp.Header.QR = false
			},
			wantErr: true,
		},
		{
			name: "WrongID",
			mutate: func(resp *Message) {
				resp.Header.ID = 8
			},
			wantErr: true,
		},
		{
			name: "MissingQuestion",
			mutate: func(resp *Message) {
				resp.Questions = nil
			},
			wantErr: true,
		},
		{
			name: "DifferentName",
			mutate: func(resp *Message) {
				resp.Questions[0].Name = "example.org"
			},
			wantErr: true,
		},
		{
			name: "DifferentCaseSameName",
			mutate: func(resp *Message) {
				resp.Questions[0].Name = "EXAMPLE.com"
			},
			wantErr: false,
		},
		{
			name: "DifferentType",
			mutate: func(resp *Message) {
				resp.Questions[0].Type = RecordTypeAAAA
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := newQuery()
			resp := NewResponse(query)
			tt.mutate(resp)

			err := ValidateResponse(query, resp)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidResponse)
				return
			}
			require.NoError(t, err)
		})
	}
}
