package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	twerrors "tamilwords/internal/errors"
)

// parseID converts a positional argument into a positive identifier.
func parseID(name, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, twerrors.NewValidationError(name, arg, "positive", name+" must be a positive integer")
	}
	return id, nil
}

func parseIDs(name string, args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseID(name, arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// optionalInt returns the flag's value only when it was given on the command line.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// optionalString is optionalInt for string flags.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
