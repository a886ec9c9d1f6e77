package ledger

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

func codeFor(prefix string, id int64) string {
	s := strconv.FormatInt(id, 10)
	sum := md5.Sum([]byte(s))
	return prefix + s + hex.EncodeToString(sum[:])[:4]
}

// ReferralCode derives the stable referral code for a user id. The same id
// yields the same code in every process.
func ReferralCode(id int64) string {
	return codeFor("REF", id)
}

func AgentCode(id int64) string {
	return codeFor("AGT", id)
}

func ManagerCode(id int64) string {
	return codeFor("MGR", id)
}
