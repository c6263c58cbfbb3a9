package convert

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/csvio"
	"github.com/varkrai/bcsv/pkg/integrity"
	"github.com/varkrai/bcsv/pkg/namehash"
)

func names(labels ...string) namehash.Table {
	t := make(namehash.Table, len(labels))
	for _, l := range labels {
		t[namehash.Calc(l)] = l
	}
	return t
}

func TestCSV_RoundTrip(t *testing.T) {
	csv := "id:Long,name:StringOff\n1,Ann\n2,\"Bo,b\"\n"
	opts := Options{Names: names("id", "name")}

	payload, err := FromCSV([]byte(csv), opts)
	require.NoError(t, err)
	require.Equal(t, 0, len(payload)%32, "payloads are padded to 32-byte multiples")

	back, err := ToCSV(payload, opts)
	require.NoError(t, err)
	require.Equal(t, csv, string(back))
}

func TestCSV_RoundTrip_AllTypes(t *testing.T) {
	csv := "a:Long,b:String,c:Float,d:ULong,e:Short,f:Char,g:StringOff\n" +
		"-5,fixed,1.5,4294967295,100,7,heap\n" +
		"0,,0,0,0,0,heap\n"
	opts := Options{Signed: true, Names: names("a", "b", "c", "d", "e", "f", "g")}

	payload, err := FromCSV([]byte(csv), opts)
	require.NoError(t, err)

	back, err := ToCSV(payload, opts)
	require.NoError(t, err)
	require.Equal(t, csv, string(back))
}

func TestEndianness_SameContent(t *testing.T) {
	csv := "id:Long,score:Short\n258,772\n"
	big := Options{Endian: codec.BigEndian, Names: names("id", "score")}
	little := Options{Endian: codec.LittleEndian, Names: names("id", "score")}

	bePayload, err := FromCSV([]byte(csv), big)
	require.NoError(t, err)
	lePayload, err := FromCSV([]byte(csv), little)
	require.NoError(t, err)
	require.False(t, bytes.Equal(bePayload, lePayload),
		"byte orders must produce distinct payloads for multi-byte values")

	// Decoding follows the payload's own flag, so both render identically.
	beCSV, err := ToCSV(bePayload, big)
	require.NoError(t, err)
	leCSV, err := ToCSV(lePayload, big)
	require.NoError(t, err)
	require.Equal(t, csv, string(beCSV))
	require.Equal(t, string(beCSV), string(leCSV))
}

func TestMask_RestrictsOutputNotStorage(t *testing.T) {
	csv := "a:Long,b:Long,c:Long\n1,2,3\n"
	mask := make(codec.Selection, 1)
	mask.Set(0)
	mask.Set(2)
	opts := Options{Mask: mask, Names: names("a", "b", "c")}

	payload, err := FromCSV([]byte(csv), opts)
	require.NoError(t, err)

	out, err := ToCSV(payload, Options{Names: names("a", "b", "c")})
	require.NoError(t, err)
	require.Equal(t, "a:Long,c:Long\n1,3\n", string(out))

	// The excluded column is still stored in the payload.
	doc, err := codec.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, uint8(codec.Version2), doc.Header.Version)
	require.Len(t, doc.Rows[0], 3)
	require.Equal(t, uint32(2), doc.Rows[0][1].Raw)
}

func TestIntegrity_FailClosed(t *testing.T) {
	payload, err := FromCSV([]byte("id:Long\n1\n"), Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	sumPath := filepath.Join(dir, "table.sha256")
	require.NoError(t, integrity.WriteSum(payload, sumPath))

	_, err = ToCSV(payload, Options{SumPath: sumPath})
	require.NoError(t, err)

	tampered := append([]byte(nil), payload...)
	tampered[len(tampered)-1] ^= 0xFF
	_, err = ToCSV(tampered, Options{SumPath: sumPath})
	require.ErrorIs(t, err, integrity.ErrMismatch)

	// No sidecar path means no check, so the tampered padding still decodes.
	_, err = ToCSV(tampered, Options{})
	require.NoError(t, err)
}

func TestSignedness_DivergesOnRender(t *testing.T) {
	payload, err := FromCSV([]byte("v:Long\n-1\n"), Options{Signed: true})
	require.NoError(t, err)

	asSigned, err := ToCSV(payload, Options{Signed: true, Names: names("v")})
	require.NoError(t, err)
	require.Equal(t, "v:Long\n-1\n", string(asSigned))

	asUnsigned, err := ToCSV(payload, Options{Signed: false, Names: names("v")})
	require.NoError(t, err)
	require.Equal(t, "v:Long\n4294967295\n", string(asUnsigned))
}

func TestCustomDelimiter(t *testing.T) {
	csv := "a:Long;b:StringOff\n1;he,llo\n"
	opts := Options{Delimiter: ';', Names: names("a", "b")}

	payload, err := FromCSV([]byte(csv), opts)
	require.NoError(t, err)

	out, err := ToCSV(payload, opts)
	require.NoError(t, err)
	require.Equal(t, csv, string(out))

	doc, err := codec.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, byte(';'), doc.Header.Delim)
}

func TestFromCSV_Failures(t *testing.T) {
	_, err := FromCSV(nil, Options{})
	require.ErrorIs(t, err, csvio.ErrBadLabel)

	_, err = FromCSV([]byte("id:NotAType\n1\n"), Options{})
	require.ErrorIs(t, err, csvio.ErrBadLabel)

	_, err = FromCSV([]byte("id:Long\n1,2\n"), Options{})
	var perr *csvio.ParseError
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, csvio.ErrFieldCount)

	_, err = FromCSV([]byte("id:Long\n-1\n"), Options{Signed: false})
	require.ErrorIs(t, err, codec.ErrValueOutOfRange)

	_, err = FromCSVFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	require.Error(t, err)
}

func TestToCSV_RejectsMalformedPayload(t *testing.T) {
	_, err := ToCSV([]byte("not a bcsv payload, just text"), Options{})
	require.ErrorIs(t, err, codec.ErrBadMagic)
}
