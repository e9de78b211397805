package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/foomo/readmeq/pkg/options"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type sectionEdit struct {
	key     string
	content string
}

func NewEditCommand(root *viper.Viper, startedAt time.Time) *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "edit [<key> [<content>]]",
		Short: "Replace the content of a marked section",
		Example: `  readmeq edit usage "$(mytool --help)" -n
  readmeq edit docs --content-file build/docs.md --backup
  readmeq edit --set usage=build/usage.md --set api=build/api.md`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := defaultOptions(root, startedAt)
			if err != nil {
				return err
			}

			edits, err := sectionEdits(cmd.InOrStdin(), contentFileFlag(v), setFlag(cmd.Flags()), args)
			if err != nil {
				return err
			}

			l := zap.L().Named("edit")
			e := newEditor(l, defaults)
			opts := []options.ModifyOption{
				options.WithFilePath(fileFlag(v)),
				options.WithSectionStart(sectionStartFlag(v)),
				options.WithSectionEnd(sectionEndFlag(v)),
				options.WithNewline(newlineFlag(v)),
			}

			var errs error
			for i, edit := range edits {
				// one backup before the first edit, later ones would overwrite it
				res := e.EditSection(cmd.Context(), edit.key, edit.content,
					append(opts, options.WithBackup(backupFlag(v) && i == 0))...,
				)
				if err := writeResult(cmd.OutOrStdout(), outputFlag(root), "edit", edit.key, res, func(bool) string {
					return fmt.Sprintf("edited section %s in %s", edit.key, fileFlag(v))
				}); err != nil {
					return err
				}
				errs = multierr.Append(errs, res.Err())
			}
			return errs
		},
	}

	flags := cmd.Flags()
	addFileFlag(flags, v)
	addSectionStartFlag(flags, v)
	addSectionEndFlag(flags, v)
	addNewlineFlag(flags, v)
	addBackupFlag(flags, v)
	addContentFileFlag(flags, v)
	addSetFlag(flags)

	return cmd
}

// sectionEdits collects the edits requested by args and flags in a stable order.
func sectionEdits(stdin io.Reader, contentFile string, sets map[string]string, args []string) ([]sectionEdit, error) {
	var edits []sectionEdit

	switch {
	case len(args) == 2 && contentFile != "":
		return nil, errors.New("content must be given either as argument or with --content-file")
	case len(args) == 2:
		content := args[1]
		if content == "-" {
			var err error
			if content, err = readContent(stdin, "-"); err != nil {
				return nil, err
			}
		}
		edits = append(edits, sectionEdit{key: args[0], content: content})
	case len(args) == 1 && contentFile != "":
		content, err := readContent(stdin, contentFile)
		if err != nil {
			return nil, err
		}
		edits = append(edits, sectionEdit{key: args[0], content: content})
	case len(args) == 1:
		return nil, errors.Errorf("missing content for section %s", args[0])
	}

	keys := make([]string, 0, len(sets))
	for key := range sets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		content, err := readContent(stdin, sets[key])
		if err != nil {
			return nil, err
		}
		edits = append(edits, sectionEdit{key: key, content: content})
	}

	if len(edits) == 0 {
		return nil, errors.New("nothing to edit, pass <key> <content> or --set key=file")
	}
	return edits, nil
}

func readContent(stdin io.Reader, filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read content from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read content file %s", filename)
	}
	return string(data), nil
}
