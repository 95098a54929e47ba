package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"quoted string", `{"reference": "RF 00123"}`, "RF 00123"},
		{"bare integer", `{"reference": 123}`, "123"},
		{"bare float keeps digits", `{"reference": 12.5}`, "12.5"},
		{"null", `{"reference": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input TransactionInput
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &input))
			assert.Equal(t, tt.expected, string(input.Reference))
		})
	}
}

func TestValidateTransaction(t *testing.T) {
	valid := TransactionInput{
		TransactionID: "TX-1",
		Amount:        amount(-100),
		Date:          "2024-01-01",
	}
	assert.NoError(t, validateTransaction(valid))

	missingID := valid
	missingID.TransactionID = ""
	assert.Error(t, validateTransaction(missingID))

	missingAmount := valid
	missingAmount.Amount = nil
	assert.Error(t, validateTransaction(missingAmount))

	missingDate := valid
	missingDate.Date = ""
	assert.Error(t, validateTransaction(missingDate))
}

func TestValidateAttachment(t *testing.T) {
	valid := AttachmentInput{
		AttachmentID: "ATT-1",
		DocumentType: "invoice",
		Data: AttachmentDataInput{
			TotalAmount: amount(100),
		},
	}
	assert.NoError(t, validateAttachment(valid))

	noType := valid
	noType.DocumentType = ""
	assert.NoError(t, validateAttachment(noType))

	badType := valid
	badType.DocumentType = "contract"
	assert.Error(t, validateAttachment(badType))

	missingAmount := valid
	missingAmount.Data.TotalAmount = nil
	assert.Error(t, validateAttachment(missingAmount))

	missingID := valid
	missingID.AttachmentID = ""
	assert.Error(t, validateAttachment(missingID))
}
