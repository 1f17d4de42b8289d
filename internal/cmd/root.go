package cmd

import (
	"fmt"
	"os"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/sdfgen/internal/sdf"
	"github.com/MeKo-Tech/sdfgen/internal/sdferr"
	"github.com/MeKo-Tech/sdfgen/internal/sdfio"
)

var cfgFile string
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "sdfgen",
	Short: "Generate a signed distance field from a raster image",
	Long: `sdfgen reads a raster image, thresholds it into an inside/outside mask,
runs a two-sided Euclidean distance transform, and writes the resulting
signed distance field back out as a single-channel raster.`,
	RunE: runGenerate,
}

func Execute() {
	if logger == nil {
		initLogging() // fallback in case cobra init didn't fire
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(sdferr.ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	flags := rootCmd.Flags()
	flags.StringP("input", "i", "", "input image path (- for stdin)")
	flags.StringP("output", "o", "", "output image path (- for stdout)")
	flags.Int("spread", 4, "distance spread, in pixels, mapped onto the output byte range")
	flags.Int("quality", 100, "encoder quality, 1-100 (JPEG only)")
	flags.String("format", "", "output format: png, bmp, jpeg, tga (default: inferred from --output extension)")
	flags.Bool("invert", false, "treat below-threshold pixels as inside instead of above-threshold")
	flags.Bool("luminance", false, "threshold on luminance instead of alpha")
	flags.Bool("asymmetric", false, "map the output range to [0, spread] instead of [-spread, spread]")
	flags.Int("supersample", 1, "render at this multiple of the output resolution, then downscale")
	flags.Int("workers", 0, "worker goroutines for the distance transform (default: number of CPUs)")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	for _, name := range []string{
		"input", "output", "spread", "quality", "format",
		"invert", "luminance", "asymmetric", "supersample", "workers",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SDFGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func initLogging() {
	levelStr := strings.ToLower(viper.GetString("log-level"))
	level := slog.LevelInfo
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error", "err":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Unknown log level %q, defaulting to info\n", levelStr)
		level = slog.LevelInfo
	}
	if viper.GetBool("verbose") && level > slog.LevelDebug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	output := viper.GetString("output")

	format, err := resolveFormat(viper.GetString("format"), output)
	if err != nil {
		return err
	}

	opts := sdf.Options{
		InputPath:   input,
		OutputPath:  output,
		Format:      format,
		Spread:      viper.GetInt("spread"),
		Quality:     viper.GetInt("quality"),
		Invert:      viper.GetBool("invert"),
		Luminance:   viper.GetBool("luminance"),
		Asymmetric:  viper.GetBool("asymmetric"),
		Supersample: viper.GetInt("supersample"),
		Workers:     viper.GetInt("workers"),
		Logger:      logger,
	}

	return sdf.Generate(cmd.Context(), opts)
}

func resolveFormat(tag, outputPath string) (sdfio.Format, error) {
	if tag != "" {
		return sdfio.ParseFormat(tag)
	}
	return sdfio.FormatFromExt(outputPath), nil
}
