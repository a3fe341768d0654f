package csvio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_QuotesEveryField(t *testing.T) {
	tests := []struct {
		name    string
		records [][]string
		want    string
	}{
		{
			name:    "plain fields",
			records: [][]string{{"u1", "Alice", "50000"}},
			want:    "\"u1\",\"Alice\",\"50000\"\n",
		},
		{
			name:    "empty fields stay quoted",
			records: [][]string{{"", "", ""}},
			want:    "\"\",\"\",\"\"\n",
		},
		{
			name:    "embedded comma",
			records: [][]string{{"a,b", "c"}},
			want:    "\"a,b\",\"c\"\n",
		},
		{
			name:    "embedded quote doubled",
			records: [][]string{{`say "hi"`, "x"}},
			want:    "\"say \"\"hi\"\"\",\"x\"\n",
		},
		{
			name:    "multiple records use line feeds",
			records: [][]string{{"h1", "h2"}, {"a", "b"}, {"c", "d"}},
			want:    "\"h1\",\"h2\"\n\"a\",\"b\"\n\"c\",\"d\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			for _, rec := range tt.records {
				require.NoError(t, w.Write(rec))
			}
			require.NoError(t, w.Flush())

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReader_ReadsQuotedRecords(t *testing.T) {
	in := "\"user_id\",\"user_nm\"\n\"u1\",\"Alice\"\n\"u2\",\"say \"\"hi\"\"\"\n"
	r := NewReader(strings.NewReader(in))

	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"user_id", "user_nm"}, header)

	row1, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "Alice"}, row1)

	row2, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", `say "hi"`}, row2)

	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	_, err := r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_RejectsRaggedRows(t *testing.T) {
	in := "\"a\",\"b\"\n\"only-one\"\n"
	r := NewReader(strings.NewReader(in))

	_, err := r.Read()
	require.NoError(t, err)

	_, err = r.Read()
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	records := [][]string{
		{"user_id", "user_nm", "income_am"},
		{"u1", "Alice", "50000"},
		{"u2", `O"Brien, Pat`, "1234.56"},
		{"u3", "", "-10"},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	r := NewReader(&buf)
	var got [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}

	assert.Equal(t, records, got)
}
