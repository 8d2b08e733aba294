package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	deepgram "github.com/mbrock/deepgram-go"
	"github.com/mbrock/deepgram-go/live"
	"github.com/mbrock/deepgram-go/manage"
	"github.com/mbrock/deepgram-go/prerecorded"
)

var logger *log.Logger

var (
	interimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	finalStyle = lipgloss.NewStyle().
			Bold(true)
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		String("deepgram-api-key", "", "Deepgram API key")
	rootCmd.PersistentFlags().
		String("model", "nova-2", "Transcription model")
	rootCmd.PersistentFlags().
		String("language", "en-US", "Transcription language")

	viper.BindPFlag(
		"deepgram_api_key",
		rootCmd.PersistentFlags().Lookup("deepgram-api-key"),
	)
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))

	streamCmd.Flags().
		String("encoding", "linear16", "Audio encoding of the input file")
	streamCmd.Flags().
		Int("sample-rate", 16000, "Sample rate of the input file")
	streamCmd.Flags().
		Int("channels", 1, "Channel count of the input file")
	streamCmd.Flags().
		Int("frame-size", 3200, "Bytes of audio per frame")
	streamCmd.Flags().
		Duration("frame-delay", 100*time.Millisecond, "Delay between frames")

	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(projectsCmd)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	logger = log.New(os.Stderr)
}

var rootCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe speech with the Deepgram API",
	Long:  `Transcribe prerecorded audio or a live audio stream, and inspect your Deepgram projects.`,
}

var urlCmd = &cobra.Command{
	Use:   "url <audio-url>",
	Short: "Transcribe prerecorded audio from a URL",
	Args:  cobra.ExactArgs(1),
	Run:   runURL,
}

var streamCmd = &cobra.Command{
	Use:   "stream <audio-file>",
	Short: "Live-transcribe a raw audio file",
	Long:  `Stream a raw audio file to the live transcription API at a fixed frame pace, printing interim and final results as they arrive.`,
	Args:  cobra.ExactArgs(1),
	Run:   runStream,
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List your projects in a table",
	Run:   runProjects,
}

func newDeepgramClient() *deepgram.Client {
	apiKey := viper.GetString("deepgram_api_key")
	if apiKey == "" {
		prompt := huh.NewInput().
			Title("Deepgram API key").
			EchoMode(huh.EchoModePassword).
			Value(&apiKey)
		if err := prompt.Run(); err != nil || apiKey == "" {
			logger.Fatal("no API key provided")
		}
	}
	return deepgram.New(apiKey, deepgram.WithLogger(logger))
}

func runURL(cmd *cobra.Command, args []string) {
	dg := newDeepgramClient()

	resp, err := prerecorded.NewClient(dg).Transcribe(
		context.Background(),
		prerecorded.UrlSource{URL: args[0]},
		&prerecorded.Options{
			Model:     viper.GetString("model"),
			Language:  viper.GetString("language"),
			Punctuate: true,
		},
	)
	if err != nil {
		logger.Fatal("transcribe", "error", err.Error())
	}

	logger.Info(
		"transcribed",
		"request", resp.Metadata.RequestID,
		"duration", fmt.Sprintf("%.1fs", resp.Metadata.Duration),
	)
	fmt.Println(finalStyle.Render(resp.Transcript()))
}

func runStream(cmd *cobra.Command, args []string) {
	encoding, _ := cmd.Flags().GetString("encoding")
	sampleRate, _ := cmd.Flags().GetInt("sample-rate")
	channels, _ := cmd.Flags().GetInt("channels")
	frameSize, _ := cmd.Flags().GetInt("frame-size")
	frameDelay, _ := cmd.Flags().GetDuration("frame-delay")

	file, err := os.Open(args[0])
	if err != nil {
		logger.Fatal("open audio file", "error", err.Error())
	}
	defer file.Close()

	dg := newDeepgramClient()

	ctx := context.Background()
	session, err := live.Dial(ctx, dg, &live.Options{
		Model:          viper.GetString("model"),
		Language:       viper.GetString("language"),
		Encoding:       encoding,
		SampleRate:     sampleRate,
		Channels:       channels,
		Punctuate:      true,
		InterimResults: true,
		KeepAlive:      true,
	})
	if err != nil {
		logger.Fatal("dial", "error", err.Error())
	}
	defer session.Close()

	go func() {
		buf := make([]byte, frameSize)
		for {
			n, err := io.ReadFull(file, buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				if err := session.Send(ctx, chunk); err != nil {
					logger.Error("send", "error", err.Error())
					return
				}
			}
			if err != nil {
				session.Finish()
				return
			}
			time.Sleep(frameDelay)
		}
	}()

	for ev := range session.Events() {
		switch ev := ev.(type) {
		case *live.ResultsEvent:
			text := ev.Transcript()
			if text == "" {
				continue
			}
			if ev.IsFinal {
				fmt.Println(finalStyle.Render(text))
			} else {
				fmt.Println(interimStyle.Render(text))
			}
		case *live.MetadataEvent:
			logger.Info("stream finished", "request", ev.RequestID)
		case *live.ErrorEvent:
			if ev.Fatal {
				logger.Error("session failed", "error", ev.Error())
			} else {
				logger.Warn("transcription error", "error", ev.Error())
			}
		}
	}

	if err := session.Err(); err != nil {
		os.Exit(1)
	}
}

func runProjects(cmd *cobra.Command, args []string) {
	dg := newDeepgramClient()

	projects, err := manage.NewClient(dg).ListProjects(context.Background())
	if err != nil {
		logger.Fatal("list projects", "error", err.Error())
	}

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Company"})
	table.SetBorder(false)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetAutoWrapText(false)

	for _, project := range projects {
		table.Append([]string{
			project.ProjectID,
			project.Name,
			project.Company,
		})
	}

	table.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
