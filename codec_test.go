package ratio_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/kbolino/ratio"
	"github.com/kbolino/ratio/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"
)

func TestN_JSON(t *testing.T) {
	require := require.New(t)

	type doc struct {
		Share ratio.N    `json:"share"`
		Total bigint.Int `json:"total"`
	}
	in := doc{New(-6, 4), bigint.FromInt64(300)}
	b, err := json.Marshal(in)
	require.Nil(err)
	require.Equal(`{"share":"-3/2","total":"300"}`, string(b))

	var out doc
	require.Nil(json.Unmarshal(b, &out))
	require.True(out.Share.Equal(in.Share))
	require.True(out.Total.Equal(in.Total))

	require.Nil(json.Unmarshal([]byte(`{"share":"10/-4"}`), &out))
	require.Equal("-5/2", out.Share.String())

	err = json.Unmarshal([]byte(`{"share":"1/0"}`), &out)
	require.ErrorIs(err, ratio.ErrDivByZero)
	err = json.Unmarshal([]byte(`{"share":1.5}`), &out)
	require.ErrorIs(err, ratio.ErrFmtInvalid)

	// null is a no-op, as with the standard library types
	require.Nil(json.Unmarshal([]byte(`{"share":null,"total":null}`), &out))
	require.Equal("-5/2", out.Share.String())
	require.Equal("300", out.Total.String())
	var z ratio.N
	require.Nil(z.UnmarshalJSON([]byte("null")))
	require.True(z.IsZero())
}

func TestN_Text(t *testing.T) {
	var x ratio.N
	require.Nil(t, x.UnmarshalText([]byte("4/6")))
	b, err := x.MarshalText()
	require.Nil(t, err)
	assert.Equal(t, "2/3", string(b))
	assert.ErrorIs(t, x.UnmarshalText([]byte("4")), ratio.ErrFmtInvalid)
	assert.Equal(t, "2/3", x.String())
}

func TestN_Msgpack(t *testing.T) {
	assert := assert.New(t)

	x := New(-1, 2)
	p, err := msgpack.Marshal(x)
	assert.Nil(err)
	// fixext4, type 2: sign, numerator length, numerator, denominator
	assert.Equal("d60201010102", hex.EncodeToString(p))

	var y ratio.N
	assert.Nil(msgpack.Unmarshal(p, &y))
	assert.True(x.Equal(y))

	type entry struct {
		Weight ratio.N
		Count  bigint.Int
	}
	in := entry{ratio.NewBig(bigint.MustParse("-123456789012345678901234567890"), bigint.MustParse("7")), bigint.FromInt64(9)}
	p, err = msgpack.Marshal(in)
	assert.Nil(err)
	var out entry
	assert.Nil(msgpack.Unmarshal(p, &out))
	assert.True(in.Weight.Equal(out.Weight))
	assert.True(in.Count.Equal(out.Count))

	p, err = msgpack.Marshal(ratio.N{})
	assert.Nil(err)
	var z ratio.N
	assert.Nil(msgpack.Unmarshal(p, &z))
	assert.True(z.IsZero())
	assert.True(z.IsValid())
}

func TestN_UnmarshalMsgpackInvalid(t *testing.T) {
	var x ratio.N
	assert.ErrorIs(t, x.UnmarshalMsgpack(nil), ratio.ErrFmtInvalid)
	assert.ErrorIs(t, x.UnmarshalMsgpack([]byte{7, 0, 1}), ratio.ErrFmtInvalid)
	assert.ErrorIs(t, x.UnmarshalMsgpack([]byte{0, 5, 1}), ratio.ErrFmtInvalid)
	// zero denominator
	assert.ErrorIs(t, x.UnmarshalMsgpack([]byte{0, 1, 3}), ratio.ErrDivByZero)
	// not in lowest terms, reduced on the way in
	assert.Nil(t, x.UnmarshalMsgpack([]byte{1, 1, 4, 6}))
	assert.Equal(t, "-2/3", x.String())
}
