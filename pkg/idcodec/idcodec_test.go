package idcodec

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []int64{0, 1, 42, 1 << 53, 1<<53 + 1, 9007199254740993, math.MaxInt64 - 1, math.MaxInt64}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		values = append(values, r.Int63())
	}

	for _, x := range values {
		encoded := Encode(x)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, x, decoded)

		// 用任意精度整数比对,确保没有经过float截断
		parsed, ok := new(big.Int).SetString(encoded, 10)
		require.True(t, ok)
		assert.Equal(t, 0, parsed.Cmp(big.NewInt(x)), "encode(%d)=%s", x, encoded)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{"数字字符串", "123", 123, false},
		{"零", "0", 0, false},
		{"最大int64", "9223372036854775807", math.MaxInt64, false},
		{"json.Number", json.Number("77"), 77, false},
		{"int", 5, 5, false},
		{"int64", int64(6), 6, false},
		{"整数float64", float64(9), 9, false},
		{"空字符串", "", 0, true},
		{"负数字符串", "-1", 0, true},
		{"带加号", "+1", 0, true},
		{"带空格", " 1", 0, true},
		{"小数字符串", "1.5", 0, true},
		{"字母", "abc", 0, true},
		{"溢出", "9223372036854775808", 0, true},
		{"负int", -3, 0, true},
		{"小数float64", 1.5, 0, true},
		{"超出安全范围的float64", float64(1<<53) * 4, 0, true},
		{"不支持的类型", true, 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidIdentifier))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParam(t *testing.T) {
	id, err := ParseParam("9007199254740993")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), id)

	_, err = ParseParam("12a")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestIDJSON(t *testing.T) {
	type genre struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}
	type payload struct {
		ID       ID      `json:"id"`
		AuthorID ID      `json:"authorId"`
		GenreIDs []ID    `json:"genreIds"`
		Genres   []genre `json:"genres"`
		Count    int     `json:"count"`
	}

	t.Run("嵌套结构中的ID都编码为字符串", func(t *testing.T) {
		p := payload{
			ID:       ID(math.MaxInt64),
			AuthorID: 7,
			GenreIDs: []ID{1, 9007199254740993},
			Genres:   []genre{{ID: 3, Name: "fantasy"}},
			Count:    2,
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id":"9223372036854775807",
			"authorId":"7",
			"genreIds":["1","9007199254740993"],
			"genres":[{"id":"3","name":"fantasy"}],
			"count":2
		}`, string(data))
	})

	t.Run("输入同时接受字符串和数字", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"id":"9223372036854775807","authorId":7,"genreIds":["1",2]}`), &p)
		require.NoError(t, err)
		assert.Equal(t, ID(math.MaxInt64), p.ID)
		assert.Equal(t, ID(7), p.AuthorID)
		assert.Equal(t, []ID{1, 2}, p.GenreIDs)
	})

	t.Run("null保持零值", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"authorId":null}`), &p))
		assert.Equal(t, ID(0), p.AuthorID)
	})

	t.Run("非法ID返回ErrInvalidIdentifier", func(t *testing.T) {
		for _, body := range []string{`{"authorId":"abc"}`, `{"authorId":-1}`, `{"authorId":1.5}`, `{"authorId":true}`} {
			var p payload
			err := json.Unmarshal([]byte(body), &p)
			require.Error(t, err, body)
			assert.True(t, errors.Is(err, ErrInvalidIdentifier), body)
		}
	})
}

func TestSliceHelpers(t *testing.T) {
	assert.Nil(t, ToInt64s(nil))
	assert.Equal(t, []int64{}, ToInt64s([]ID{}))
	assert.Equal(t, []int64{1, 2}, ToInt64s([]ID{1, 2}))
	assert.Equal(t, []ID{4, 5}, FromInt64s([]int64{4, 5}))
}
