package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"blindsteg/internal/logging"
	"blindsteg/internal/payload"
	"blindsteg/pkg/config"
	nstegImage "blindsteg/pkg/image"
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "blindsteg image insert --image source.png --data secret.txt --output-file output.png",
	}

	imageCmd.AddCommand(insertImageCommand(), extractImageCommand(), spaceImageCommand())
	return imageCmd
}

type insertImageOpts struct {
	sourceImage       string
	dataFile          string
	outputImage       string
	remainingBits     string
	seed              uint64
	shrinkToMinPixels int
	growToMaxPixels   int
	outputFormat      string
	pngCompression    string
	compress          bool
	bits              bitsOpts
}

// InsertJob is everything needed to hide a file in an image
type InsertJob struct {
	SourceImage string
	DataFile    string
	OutputImage string
	Insert      config.InsertConfig
	Output      config.OutputConfig
	Fit         nstegImage.FitOptions
	Compress    bool
}

func (o insertImageOpts) toInsertJob(cmd *cobra.Command) (InsertJob, error) {
	profile, err := o.bits.loadProfile()
	if err != nil {
		return InsertJob{}, err
	}
	iConfig, err := profile.InsertConfig()
	if err != nil {
		return InsertJob{}, err
	}
	if iConfig.Bits, err = o.bits.channelBits(cmd, profile); err != nil {
		return InsertJob{}, err
	}

	// the flag default applies unless the profile picked an action
	if cmd.Flags().Changed("remaining-bits") || profile.RemainingBits == "" {
		action, err := config.ParseRemainingBitsAction(o.remainingBits)
		if err != nil {
			return InsertJob{}, err
		}
		if action.Kind == config.RemainingBitsRandomize && profile.Seed != nil {
			action = config.RandomizeRemainingBits(*profile.Seed)
		}
		iConfig.RemainingBits = action
	}
	if cmd.Flags().Changed("seed") && iConfig.RemainingBits.Kind == config.RemainingBitsRandomize {
		iConfig.RemainingBits = config.RandomizeRemainingBits(o.seed)
	}

	out, err := profile.OutputConfig()
	if err != nil {
		return InsertJob{}, err
	}
	switch {
	case cmd.Flags().Changed("output-format"):
		if out.Format, err = config.ParseOutputFormat(o.outputFormat); err != nil {
			return InsertJob{}, err
		}
	case profile.OutputFormat == "":
		out.Format = config.FormatFromPath(o.outputImage)
	}
	if cmd.Flags().Changed("png-compression") || profile.PngCompression == "" {
		out.PngCompressionLevel = config.ParsePngCompression(o.pngCompression)
	}

	return InsertJob{
		SourceImage: o.sourceImage,
		DataFile:    o.dataFile,
		OutputImage: o.outputImage,
		Insert:      iConfig,
		Output:      out,
		Fit: nstegImage.FitOptions{
			ShrinkToMinPixels: o.shrinkToMinPixels,
			GrowToMaxPixels:   o.growToMaxPixels,
		},
		Compress: o.compress || profile.Compress,
	}, nil
}

func (o *insertImageOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.sourceImage, "image", "", "Image to hide data in")
	cmd.Flags().StringVar(&o.dataFile, "data", "", "File whose contents will be hidden in the source image")
	cmd.Flags().StringVar(&o.outputImage, "output-file", "", "Name for the image with hidden data that will be generated")

	cmd.Flags().StringVar(&o.remainingBits, "remaining-bits", "randomize", "What to write in the bits left over after the data. Options are none, zero, randomize")
	cmd.Flags().Uint64Var(&o.seed, "seed", config.DefaultRandomSeed, "Seed used when randomizing the remaining bits")
	cmd.Flags().IntVar(&o.shrinkToMinPixels, "shrink-to-fit-min-pixels", 0, "Shrink the image if it is bigger than needed to hold the data, without going below this many pixels. 0 disables shrinking")
	cmd.Flags().IntVar(&o.growToMaxPixels, "grow-to-fit-max-pixels", 0, "Grow the image if it is too small to hold the data, without going above this many pixels. 0 disables growing")
	cmd.Flags().StringVar(&o.outputFormat, "output-format", "", "Format of the output image. Options are png, bmp, tiff. Defaults to the output file extension")
	cmd.Flags().StringVar(&o.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	cmd.Flags().BoolVar(&o.compress, "compress", false, "Compress the data with zstd before hiding it")
	o.bits.addFlags(cmd)
}

func insertImageCommand() *cobra.Command {
	opts := insertImageOpts{}

	insertImgCmd := &cobra.Command{
		Use:     "insert",
		Example: "blindsteg image insert --image source.png --data secret.txt --output-file output.png --lsbs 2",
		Short:   "Hide the contents of a file in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := opts.toInsertJob(cmd)
			if err != nil {
				return err
			}
			return InsertDataIntoImage(cmd, job)
		},
	}

	opts.addFlags(insertImgCmd)

	MarkFlagsRequired(insertImgCmd, "image", "data", "output-file")

	return insertImgCmd
}

func InsertDataIntoImage(cmd *cobra.Command, job InsertJob) error {
	s := NewSpinner(cmd.ErrOrStderr())
	s.Prefix = "Reading data to hide "
	s.Start()
	defer s.Stop()

	data, err := os.ReadFile(job.DataFile)
	if err != nil {
		return err
	}
	if job.Compress {
		s.Prefix = "Compressing data "
		data = payload.Compress(data)
	}

	s.Prefix = "Reading source image from disk "
	img, _, err := nstegImage.DecodeFile(job.SourceImage)
	if err != nil {
		return err
	}

	if job.Fit.ShrinkToMinPixels > 0 || job.Fit.GrowToMaxPixels > 0 {
		s.Prefix = "Resizing source image "
		fitted, err := nstegImage.FitToPayload(img.ToImage(), len(data), job.Insert.Bits, job.Fit)
		if err != nil {
			return err
		}
		img = nstegImage.FromImage(fitted)
	}

	s.Prefix = "Inserting data "
	if err = img.InsertData(data, job.Insert); err != nil {
		return err
	}

	s.Prefix = fmt.Sprintf("Generating output %s image ", job.Output.Format)
	if err = img.EncodeFile(job.OutputImage, job.Output); err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Generated %s with %s hidden inside\n", job.OutputImage, humanize.Bytes(uint64(len(data))))
	s.Stop()

	stats := img.InsertStats()
	logging.BuildLogger().Debug("Insertion finished", "stats", stats, "bits", job.Insert.Bits.String(),
		"remaining_bits", job.Insert.RemainingBits.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Setup time: %s\n", stats.Setup)
	fmt.Fprintf(cmd.OutOrStdout(), "Data insertion time: %s\n", stats.DataInsertion)
	fmt.Fprintf(cmd.OutOrStdout(), "Output image encode time: %s\n", stats.OutputImageEncoding)
	fmt.Fprintf(cmd.OutOrStdout(), "Used %s of %s available\n", humanize.Bytes(uint64(stats.PayloadBytes)),
		humanize.Bytes(uint64(stats.CapacityBytes)))
	return nil
}

type extractImageOpts struct {
	sourceImage string
	outputFile  string
	decompress  bool
	bits        bitsOpts
}

func extractImageCommand() *cobra.Command {
	opts := extractImageOpts{}

	extractCommand := &cobra.Command{
		Use:     "extract",
		Example: "blindsteg image extract --image output.png --output-file secret.txt --lsbs 2",
		Short:   "Recover data hidden in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.bits.loadProfile()
			if err != nil {
				return err
			}
			eConfig, err := profile.ExtractConfig()
			if err != nil {
				return err
			}
			if eConfig.Bits, err = opts.bits.channelBits(cmd, profile); err != nil {
				return err
			}
			return ExtractDataFromImage(cmd, opts.sourceImage, opts.outputFile, eConfig, opts.decompress || profile.Compress)
		},
	}

	extractCommand.Flags().StringVar(&opts.sourceImage, "image", "", "Image with hidden data")
	extractCommand.Flags().StringVar(&opts.outputFile, "output-file", "", "File to write the recovered data to")
	extractCommand.Flags().BoolVar(&opts.decompress, "decompress", false, "Decompress the data with zstd after recovering it")
	opts.bits.addFlags(extractCommand)

	MarkFlagsRequired(extractCommand, "image", "output-file")

	return extractCommand
}

func ExtractDataFromImage(cmd *cobra.Command, sourceImage, outputFile string, eConfig config.ExtractConfig, decompress bool) error {
	s := NewSpinner(cmd.ErrOrStderr())
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	img, _, err := nstegImage.DecodeFile(sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Extracting data "
	data, err := img.ExtractData(eConfig)
	if err != nil {
		return err
	}
	if decompress {
		s.Prefix = "Decompressing data "
		if data, err = payload.Decompress(data); err != nil {
			return err
		}
	}

	s.Prefix = "Writing recovered data to disk "
	if err = os.WriteFile(outputFile, data, 0664); err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Recovered %s into %s\n", humanize.Bytes(uint64(len(data))), outputFile)
	s.Stop()

	logging.BuildLogger().Debug("Extraction finished", "stats", img.ExtractStats(), "bits", eConfig.Bits.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Data extraction time: %s\n", img.ExtractStats().DataExtraction)
	return nil
}

type spaceImageOpts struct {
	sourceImage string
	bits        bitsOpts
}

func spaceImageCommand() *cobra.Command {
	opts := spaceImageOpts{}

	spaceCommand := &cobra.Command{
		Use:     "space",
		Example: "blindsteg image space --image source.png --lsbs 2",
		Short:   "Show how much data fits in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.bits.loadProfile()
			if err != nil {
				return err
			}
			bits, err := opts.bits.channelBits(cmd, profile)
			if err != nil {
				return err
			}
			return PrintImageSpace(cmd, opts.sourceImage, bits)
		},
	}

	spaceCommand.Flags().StringVar(&opts.sourceImage, "image", "", "Image to measure")
	opts.bits.addFlags(spaceCommand)

	MarkFlagsRequired(spaceCommand, "image")

	return spaceCommand
}

func PrintImageSpace(cmd *cobra.Command, sourceImage string, bits config.ChannelBits) error {
	img, _, err := nstegImage.DecodeFile(sourceImage)
	if err != nil {
		return err
	}
	if err = bits.Validate(img.Format().Channels()); err != nil {
		return err
	}

	capacity := img.MaxDataCapacity(bits)
	fmt.Fprintf(cmd.OutOrStdout(), "Image: %dx%d %s, %s pixels\n", img.Width(), img.Height(), img.Format(),
		humanize.Comma(int64(img.PixelCount())))
	fmt.Fprintf(cmd.OutOrStdout(), "Bits: %s\n", bits)
	fmt.Fprintf(cmd.OutOrStdout(), "Capacity: %s (%d bytes)\n", humanize.Bytes(uint64(capacity)), capacity)
	return nil
}
