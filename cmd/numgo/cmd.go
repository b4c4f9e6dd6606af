package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pppp606/numgo/internal/envconfig"
	"github.com/pppp606/numgo/ndarray"
)

const version = "v0.1.0"

// appendEnvDocs adds the environment variable documentation to the usage text.
func appendEnvDocs(cmd *cobra.Command) {
	usage := "\nEnvironment Variables:\n"
	for _, e := range envconfig.AsMap() {
		usage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + usage)
}

// NewCLI builds the root command with all subcommands.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "numgo",
		Short:         "N-dimensional array toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: envconfig.LogLevel()})))
		},
	}
	rootCmd.PersistentFlags().String("dtype", "", "Element type for loaded arrays (default NUMGO_DTYPE or float64)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numgo %s\n", version)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show shape, dtype and size of an array",
		Args:  cobra.ExactArgs(1),
		RunE:  InfoHandler,
	}

	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Show sum, mean, std, min and max of an array",
		Args:  cobra.ExactArgs(1),
		RunE:  StatsHandler,
	}
	statsCmd.Flags().Int("ddof", 0, "Delta degrees of freedom for std")

	dotCmd := &cobra.Command{
		Use:   "dot A B",
		Short: "Dot product of two arrays",
		Args:  cobra.ExactArgs(2),
		RunE:  DotHandler,
	}

	convolveCmd := &cobra.Command{
		Use:   "convolve INPUT KERNEL",
		Short: "Valid-mode convolution of an array with a kernel",
		Args:  cobra.ExactArgs(2),
		RunE:  ConvolveHandler,
	}
	convolveCmd.Flags().Bool("fft", false, "Convolve through the FFT")

	fftCmd := &cobra.Command{
		Use:   "fft FILE",
		Short: "Discrete Fourier transform of an array of (real, imag) pairs",
		Args:  cobra.ExactArgs(1),
		RunE:  FFTHandler,
	}
	fftCmd.Flags().Bool("inverse", false, "Run the inverse transform")

	for _, c := range []*cobra.Command{infoCmd, statsCmd, dotCmd, convolveCmd, fftCmd} {
		appendEnvDocs(c)
	}
	rootCmd.AddCommand(versionCmd, infoCmd, statsCmd, dotCmd, convolveCmd, fftCmd)
	return rootCmd
}

// dtypeFlag resolves --dtype, falling back to NUMGO_DTYPE.
func dtypeFlag(cmd *cobra.Command) (ndarray.DataType, error) {
	tag, err := cmd.Flags().GetString("dtype")
	if err != nil {
		return 0, err
	}
	if tag == "" {
		return envconfig.DefaultDType(), nil
	}
	return ndarray.ParseDataType(tag)
}

// loadArray reads a JSON file holding a (nested) numeric array.
func loadArray(cmd *cobra.Command, path string) (*ndarray.Array, error) {
	dtype, err := dtypeFlag(cmd)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data any
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a, err := ndarray.NewOf(data, dtype)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded array", "path", path, "shape", a.Shape(), "dtype", a.DType())
	return a, nil
}

// printArray writes 2-D arrays as a table and everything else in repr form.
func printArray(w io.Writer, a *ndarray.Array) {
	if a.NDim() != 2 {
		fmt.Fprintln(w, a.String())
		return
	}

	cols := a.Shape()[1]
	header := make([]string, cols)
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	rows := make([][]string, a.Shape()[0])
	for i := range rows {
		rows[i] = make([]string, cols)
	}
	a.ForEach(func(idx []int, v float64) {
		rows[idx[0]][idx[1]] = ndarray.FormatValue(v)
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}

// InfoHandler prints the shape, dtype and size of an array file.
func InfoHandler(cmd *cobra.Command, args []string) error {
	a, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "shape: %v\n", []int(a.Shape()))
	fmt.Fprintf(w, "dtype: %s\n", a.DType())
	fmt.Fprintf(w, "size:  %d\n", a.Size())
	return nil
}

// StatsHandler prints full-array reductions of an array file.
func StatsHandler(cmd *cobra.Command, args []string) error {
	ddof, err := cmd.Flags().GetInt("ddof")
	if err != nil {
		return err
	}
	a, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}
	lo, err := ndarray.Min(a)
	if err != nil {
		return err
	}
	hi, err := ndarray.Max(a)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"SUM", "MEAN", "STD", "MIN", "MAX"})
	table.SetBorder(false)
	table.Append([]string{
		ndarray.FormatValue(ndarray.Sum(a)),
		ndarray.FormatValue(ndarray.Mean(a)),
		ndarray.FormatValue(ndarray.Std(a, ddof)),
		ndarray.FormatValue(lo),
		ndarray.FormatValue(hi),
	})
	table.Render()
	return nil
}

// DotHandler prints the dot product of two array files.
func DotHandler(cmd *cobra.Command, args []string) error {
	a, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := loadArray(cmd, args[1])
	if err != nil {
		return err
	}
	c, err := ndarray.Dot(a, b)
	if err != nil {
		return err
	}
	printArray(cmd.OutOrStdout(), c)
	return nil
}

// ConvolveHandler prints the valid-mode convolution of two array files.
func ConvolveHandler(cmd *cobra.Command, args []string) error {
	useFFT, err := cmd.Flags().GetBool("fft")
	if err != nil {
		return err
	}
	x, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}
	k, err := loadArray(cmd, args[1])
	if err != nil {
		return err
	}

	start := time.Now()
	convolve := ndarray.Convolve
	if useFFT {
		convolve = ndarray.FFTConvolve
	}
	out, err := convolve(x, k)
	if err != nil {
		return err
	}
	slog.Debug("convolved", "fft", useFFT, "shape", out.Shape(), "elapsed", time.Since(start))
	printArray(cmd.OutOrStdout(), out)
	return nil
}

// FFTHandler prints the forward or inverse transform of an array file.
func FFTHandler(cmd *cobra.Command, args []string) error {
	inverse, err := cmd.Flags().GetBool("inverse")
	if err != nil {
		return err
	}
	x, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}
	transform := ndarray.FFT
	if inverse {
		transform = ndarray.IFFT
	}
	out, err := transform(x)
	if err != nil {
		return err
	}
	printArray(cmd.OutOrStdout(), out)
	return nil
}
