package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{name: "string", in: `{"v":"500"}`, want: "500"},
		{name: "integer", in: `{"v":500}`, want: "500"},
		{name: "decimal", in: `{"v":12.5}`, want: "12.5"},
		{name: "null", in: `{"v":null}`, want: ""},
		{name: "absent", in: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexString `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, out.V)
		})
	}
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var out struct {
		V FlexString `json:"v"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"v":{"a":1}}`), &out))
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    FlexFloat
		wantErr bool
	}{
		{name: "number", in: `{"v":100}`, want: FlexFloat{Value: 100, Set: true}},
		{name: "numeric string", in: `{"v":" 99.5 "}`, want: FlexFloat{Value: 99.5, Set: true}},
		{name: "empty string", in: `{"v":""}`, want: FlexFloat{}},
		{name: "null", in: `{"v":null}`, want: FlexFloat{}},
		{name: "absent", in: `{}`, want: FlexFloat{}},
		{name: "garbage", in: `{"v":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexFloat `json:"v"`
			}
			err := json.Unmarshal([]byte(tt.in), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.V)
		})
	}
}

func TestTournamentJoin_WithoutRoom(t *testing.T) {
	j := TournamentJoin{ID: "j1", RoomID: "R1", RoomPassword: "P1"}
	stripped := j.WithoutRoom()
	assert.Empty(t, stripped.RoomID)
	assert.Empty(t, stripped.RoomPassword)
	assert.Equal(t, "R1", j.RoomID, "original must not be modified")
}

func TestFlexString_NumericIDs(t *testing.T) {
	var req struct {
		TournamentID FlexString `json:"tournamentId"`
		BgmiID       FlexString `json:"bgmiId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tournamentId":42,"bgmiId":5123456789}`), &req))
	assert.Equal(t, "42", req.TournamentID.String())
	assert.Equal(t, "5123456789", req.BgmiID.String())
}
