package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a chunk by id",
	Long: `delete removes the chunk with the given id and rewrites the data file,
renumbering the remaining chunks densely from 1. Deleting an id that does
not exist changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: want an integer", args[0])
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	before := len(repo.LoadAll())
	if err := repo.DeleteEntry(id); err != nil {
		return err
	}
	if len(repo.LoadAll()) == before {
		fmt.Printf("No chunk with id %d; nothing deleted.\n", id)
		return nil
	}

	fmt.Printf("Deleted chunk %d. Remaining chunks were renumbered.\n", id)
	return nil
}
