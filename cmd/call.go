package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NenX/go-dyloading/loader"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Call dyloading_add in the loaded library",
	Long: `Loads the shared library, seeds the message buffer with the label, and
calls the exported dyloading_add symbol with the given operands.
Prints the message the library writes back and the returned sum.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runCall(cmd)
		if err != nil {
			fmt.Printf("Error calling library: %v\n", err)
			return
		}
	},
}

func runCall(cmd *cobra.Command) error {
	libPath, err := cmd.Flags().GetString("lib")
	if err != nil {
		return fmt.Errorf("failed to get lib: %w", err)
	}
	a, err := cmd.Flags().GetInt32("a")
	if err != nil {
		return fmt.Errorf("failed to get a: %w", err)
	}
	b, err := cmd.Flags().GetInt32("b")
	if err != nil {
		return fmt.Errorf("failed to get b: %w", err)
	}
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		return fmt.Errorf("failed to get label: %w", err)
	}
	capacity, err := cmd.Flags().GetInt("capacity")
	if err != nil {
		return fmt.Errorf("failed to get capacity: %w", err)
	}

	lib, err := loader.Open(libPath)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()
	lib.SetCapacity(capacity)

	fmt.Println("[Go] Calling function in dynamic loading library")
	res, err := lib.Add(a, b, label)
	if err != nil {
		return fmt.Errorf("call failed: %w", err)
	}
	fmt.Println(res.Message)
	fmt.Printf("[Go] Result from dynamic loading library: %d\n", res.Sum)
	return nil
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().Int32P("a", "a", 8, "First operand")
	callCmd.Flags().Int32P("b", "b", 9, "Second operand")
	callCmd.Flags().String("label", "Jack", "Label seeded into the message buffer before the call")
	callCmd.Flags().Int("capacity", loader.DefaultCapacity, "Message buffer capacity in bytes")
}
