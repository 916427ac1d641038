package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_DefaultsRDTrueNoOPT(t *testing.T) {
	name, err := ParseName("example.net")
	require.NoError(t, err)

	msg := BuildRequest(RequestParams{Name: name, Type: RRTypeA, Class: RRClassIN, TxID: 42})

	assert.Equal(t, uint16(42), msg.Header.TxID)
	assert.True(t, msg.Header.Flags.RD)
	assert.False(t, msg.Header.Flags.AA)
	assert.Equal(t, uint16(1), msg.Header.QDCount)
	assert.Equal(t, uint16(0), msg.Header.ARCount)
	assert.Empty(t, msg.Additionals)
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, RRTypeA, msg.Questions[0].Type)
	assert.Equal(t, RRClassIN, msg.Questions[0].Class)
}

func TestBuildRequest_TweaksSetHeaderBits(t *testing.T) {
	name, _ := ParseName("example.net")
	msg := BuildRequest(RequestParams{
		Name: name, Type: RRTypeA, Class: RRClassIN,
		Tweaks: Tweaks{AA: true, AD: true, CD: true},
	})
	assert.True(t, msg.Header.Flags.AA)
	assert.True(t, msg.Header.Flags.AD)
	assert.True(t, msg.Header.Flags.CD)
}

func TestBuildRequest_EDNSDisableOmitsOPT(t *testing.T) {
	name, _ := ParseName("example.net")
	msg := BuildRequest(RequestParams{Name: name, Type: RRTypeA, Class: RRClassIN, EDNS: EDNSDisable})
	assert.Empty(t, msg.Additionals)
	assert.Equal(t, uint16(0), msg.Header.ARCount)
}

func TestBuildRequest_EDNSHideOrShowAppendsOPTWithDefaultBufsize(t *testing.T) {
	name, _ := ParseName("example.net")
	for _, policy := range []EDNSPolicy{EDNSHide, EDNSShow} {
		msg := BuildRequest(RequestParams{Name: name, Type: RRTypeA, Class: RRClassIN, EDNS: policy})
		require.Len(t, msg.Additionals, 1)
		assert.Equal(t, uint16(1), msg.Header.ARCount)
		assert.Equal(t, RRTypeOPT, msg.Additionals[0].Type)
		opt, ok := msg.Additionals[0].Data.(OPT)
		require.True(t, ok)
		assert.Equal(t, DefaultUDPPayloadSize, opt.UDPPayloadSize)
	}
}

func TestBuildRequest_EDNSWithExplicitBufSize(t *testing.T) {
	name, _ := ParseName("example.net")
	msg := BuildRequest(RequestParams{
		Name: name, Type: RRTypeA, Class: RRClassIN, EDNS: EDNSShow,
		Tweaks: Tweaks{BufSize: 4096, BufSizeSet: true},
	})
	require.Len(t, msg.Additionals, 1)
	opt := msg.Additionals[0].Data.(OPT)
	assert.Equal(t, uint16(4096), opt.UDPPayloadSize)
}
