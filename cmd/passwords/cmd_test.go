package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	rules, err := Rules()
	assert.NoError(t, err)

	// the classic scenarios
	assert.True(t, rules.Accept("b12"))
	assert.False(t, rules.Reject("abc"))
	assert.False(t, rules.Accept("abc"))
	assert.True(t, rules.Reject("abcaa"))
	assert.True(t, rules.Reject("99999"))
}

func TestCommandFlags(t *testing.T) {
	cmd := NewPasswordsCommand()
	assert.Equal(t, "recursive", cmd.Flag("strategy").DefValue)
	assert.Equal(t, "", cmd.Flag("root").DefValue)
	assert.Equal(t, "false", cmd.Flag("prune").DefValue)
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	cmd := NewPasswordsCommand()
	cmd.SetArgs([]string{"--strategy", "sideways"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	assert.ErrorContains(t, cmd.Execute(), "unknown strategy")
}
