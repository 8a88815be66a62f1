package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "string", body: `{"roll_number":"A1"}`, want: "A1"},
		{name: "integer", body: `{"roll_number":42}`, want: "42"},
		{name: "null", body: `{"roll_number":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "object rejected", body: `{"roll_number":{"x":1}}`, wantErr: true},
		{name: "bool rejected", body: `{"roll_number":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req StudentRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.RollNumber.String())
		})
	}
}

func TestValidationErrorBody(t *testing.T) {
	single := (&apperrors.ValidationError{}).Add("roll_number", apperrors.CodeRollNumberRequired)
	out, err := json.Marshal(ValidationErrorBody(single))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error_code":"STUDENT001","error_message":"Roll Number required"}`, string(out))

	both := (&apperrors.ValidationError{}).
		Add("course_name", apperrors.CodeCourseNameRequired).
		Add("course_code", apperrors.CodeCourseCodeRequired)
	out, err = json.Marshal(ValidationErrorBody(both))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"error_code":"COURSE001","error_message":"Course Name is Required"},
		{"error_code":"COURSE002","error_message":"Course Code is Required"}
	]`, string(out))
}
