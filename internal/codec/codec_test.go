package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack/internal/model"
)

func TestNewRejectsEmptySecret(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value any
	}{
		{"asset list", []model.Asset{
			{ID: "a1", Name: "Savings Account", Type: model.AssetBankAccount, Value: 250000},
			{ID: "a2", Name: "Apartment", Type: model.AssetRealEstate, Value: 4500000, Note: "jointly owned"},
		}},
		{"goals record", model.GoalsRecord{
			ShortTerm: []model.Goal{{ID: "g1", Goal: "Emergency fund", TargetAmount: 100000, CurrentSavings: 40000}},
		}},
		{"empty object", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := c.Encrypt(tt.value)
			require.NoError(t, err)
			assert.NotContains(t, enc, "Savings", "ciphertext must not leak plaintext")

			var gotJSON, wantJSON any
			require.NoError(t, c.Decrypt(enc, &gotJSON))
			require.NoError(t, c.DecryptOrPlain(enc, &wantJSON))
			assert.Equal(t, wantJSON, gotJSON)
		})
	}
}

func TestRoundTripPreservesRecord(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	want := []model.Loan{{ID: "l1", Lender: "HDFC", Type: model.LoanHome, Amount: 500000, EMI: 12000, Paid: 100000}}
	enc, err := c.Encrypt(want)
	require.NoError(t, err)

	var got []model.Loan
	require.NoError(t, c.Decrypt(enc, &got))
	assert.Equal(t, want, got)
}

func TestDecryptFailures(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	enc, err := c.Encrypt(map[string]any{"amount": 100})
	require.NoError(t, err)

	t.Run("corrupted ciphertext", func(t *testing.T) {
		var out any
		err := c.Decrypt("!!!not-base64!!!", &out)
		assert.True(t, IsDecodeError(err))
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		var out any
		err := c.Decrypt("AAAA", &out)
		assert.True(t, IsDecodeError(err))
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := New("another-secret")
		require.NoError(t, err)
		var out any
		err = other.Decrypt(enc, &out)
		assert.True(t, IsDecodeError(err))
	})

	t.Run("flipped byte", func(t *testing.T) {
		tampered := []byte(enc)
		tampered[len(tampered)-5] ^= 'x'
		var out any
		err := c.Decrypt(string(tampered), &out)
		assert.True(t, IsDecodeError(err))
	})
}

func TestDecryptOrPlainLegacyPlaintext(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	// Partitions written before encryption existed are raw JSON; they must
	// decode without an uncaught decrypt failure.
	var got map[string]any
	require.NoError(t, c.DecryptOrPlain(`{"totalIncome": 50000}`, &got))
	assert.Equal(t, float64(50000), got["totalIncome"])

	var list []map[string]any
	require.NoError(t, c.DecryptOrPlain(`[{"amount": 10}]`, &list))
	require.Len(t, list, 1)
}

func TestEncryptOutputsDiffer(t *testing.T) {
	c, err := New("test-secret")
	require.NoError(t, err)

	a, err := c.Encrypt("same value")
	require.NoError(t, err)
	b, err := c.Encrypt("same value")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "random nonce should make ciphertexts distinct")
}
