package ledger

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralCodeIsDeterministic(t *testing.T) {
	sum := md5.Sum([]byte("12345"))
	want := "REF12345" + hex.EncodeToString(sum[:])[:4]

	assert.Equal(t, want, ReferralCode(12345))
	assert.Equal(t, ReferralCode(12345), ReferralCode(12345))
	assert.NotEqual(t, ReferralCode(12345), ReferralCode(12346))
}

func TestRoleCodes(t *testing.T) {
	assert.True(t, strings.HasPrefix(AgentCode(7), "AGT7"))
	assert.True(t, strings.HasPrefix(ManagerCode(7), "MGR7"))
	assert.Len(t, AgentCode(7), len("AGT7")+4)
	assert.Equal(t, ReferralCode(7)[4:], AgentCode(7)[4:])
}
