package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"blindsteg/pkg/config"
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
}

// bitsOpts are the flags shared by every command that needs a bit configuration
type bitsOpts struct {
	red, green, blue, alpha int
	lsbs                    int
	profilePath             string
}

func (o *bitsOpts) addFlags(cmd *cobra.Command) {
	defaults := config.DefaultChannelBits()
	cmd.Flags().IntVar(&o.red, "red", int(defaults.Red.Count()), "Least significant bits to use from the red channel of each pixel. Can be 0-8")
	cmd.Flags().IntVar(&o.green, "green", int(defaults.Green.Count()), "Least significant bits to use from the green channel of each pixel. Can be 0-8")
	cmd.Flags().IntVar(&o.blue, "blue", int(defaults.Blue.Count()), "Least significant bits to use from the blue channel of each pixel. Can be 0-8")
	cmd.Flags().IntVar(&o.alpha, "alpha", int(defaults.Alpha.Count()), "Least significant bits to use from the alpha channel of each pixel. Can be 0-8, ignored for images without transparency")
	cmd.Flags().IntVar(&o.lsbs, "lsbs", 0, "Least significant bits to use from the red, green and blue channels. Can be 1-8, overrides --red, --green and --blue. The more LSBs are used, the more distortion will be noticeable in the final image")
	cmd.Flags().StringVar(&o.profilePath, "profile", "", "YAML profile with the settings to use, flags take precedence over it")
}

func (o bitsOpts) loadProfile() (config.Profile, error) {
	if o.profilePath == "" {
		return config.Profile{}, nil
	}
	return config.LoadProfile(o.profilePath)
}

// channelBits starts from the profile, or the defaults, and applies the flags the user set explicitly
func (o bitsOpts) channelBits(cmd *cobra.Command, profile config.Profile) (config.ChannelBits, error) {
	bits, err := profile.ChannelBits()
	if err != nil {
		return config.ChannelBits{}, err
	}

	for _, flag := range []struct {
		name  string
		value int
		dest  []*config.BitWidth
	}{
		{"red", o.red, []*config.BitWidth{&bits.Red}},
		{"green", o.green, []*config.BitWidth{&bits.Green}},
		{"blue", o.blue, []*config.BitWidth{&bits.Blue}},
		{"alpha", o.alpha, []*config.BitWidth{&bits.Alpha}},
		{"lsbs", o.lsbs, []*config.BitWidth{&bits.Red, &bits.Green, &bits.Blue}},
	} {
		if !cmd.Flags().Changed(flag.name) {
			continue
		}
		w, err := config.BitWidthFromCount(flag.value)
		if err != nil {
			return config.ChannelBits{}, err
		}
		for _, dest := range flag.dest {
			*dest = w
		}
	}
	return bits, nil
}
