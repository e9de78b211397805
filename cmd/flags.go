package cmd

import (
	"github.com/foomo/readmeq/pkg/options"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "console", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func outputFlag(v *viper.Viper) string {
	return v.GetString("output")
}

func addOutputFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringP("output", "o", outputText, "Output format (text, json)")
	_ = v.BindPFlag("output", flags.Lookup("output"))
}

func basePathFlag(v *viper.Viper) string {
	return v.GetString("base_path")
}

func addBasePathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("base-path", "", "Project root backups are mirrored relative to (default: working directory)")
	_ = v.BindPFlag("base_path", flags.Lookup("base-path"))
	_ = v.BindEnv("base_path", "READMEQ_BASE_PATH")
}

func backupsPathFlag(v *viper.Viper) string {
	return v.GetString("backups_path")
}

func addBackupsPathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("backups-path", "", "Backups root, a directory or bucket URL (default: <base-path>/"+options.DefaultBackupsDir+")")
	_ = v.BindPFlag("backups_path", flags.Lookup("backups-path"))
	_ = v.BindEnv("backups_path", "READMEQ_BACKUPS_PATH")
}

func backupSuffixFlag(v *viper.Viper) string {
	return v.GetString("backup_suffix")
}

func addBackupSuffixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("backup-suffix", "", "Backup file suffix (default: _backup<epoch millis>)")
	_ = v.BindPFlag("backup_suffix", flags.Lookup("backup-suffix"))
	_ = v.BindEnv("backup_suffix", "READMEQ_BACKUP_SUFFIX")
}

func backupSuffixMatchFlag(v *viper.Viper) string {
	return v.GetString("backup_suffix_match")
}

func addBackupSuffixMatchFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("backup-suffix-match", options.DefaultBackupSuffixMatch, "Pattern recognising backups, its single group is the integer version")
	_ = v.BindPFlag("backup_suffix_match", flags.Lookup("backup-suffix-match"))
	_ = v.BindEnv("backup_suffix_match", "READMEQ_BACKUP_SUFFIX_MATCH")
}

func fileFlag(v *viper.Viper) string {
	return v.GetString("file")
}

func addFileFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringP("file", "f", options.DefaultFilePath, "Document to modify")
	_ = v.BindPFlag("file", flags.Lookup("file"))
	_ = v.BindEnv("file", "READMEQ_FILE")
}

func sectionStartFlag(v *viper.Viper) string {
	return v.GetString("section.start")
}

func addSectionStartFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("section-start", options.DefaultSectionStart, "Section start template, "+options.KeyPlaceholder+" is replaced with the key")
	_ = v.BindPFlag("section.start", flags.Lookup("section-start"))
	_ = v.BindEnv("section.start", "READMEQ_SECTION_START")
}

func sectionEndFlag(v *viper.Viper) string {
	return v.GetString("section.end")
}

func addSectionEndFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("section-end", options.DefaultSectionEnd, "Section end template, "+options.KeyPlaceholder+" is replaced with the key")
	_ = v.BindPFlag("section.end", flags.Lookup("section-end"))
	_ = v.BindEnv("section.end", "READMEQ_SECTION_END")
}

func newlineFlag(v *viper.Viper) bool {
	return v.GetBool("newline")
}

func addNewlineFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.BoolP("newline", "n", false, "Wrap the new content in leading and trailing newlines")
	_ = v.BindPFlag("newline", flags.Lookup("newline"))
}

func backupFlag(v *viper.Viper) bool {
	return v.GetBool("backup")
}

func addBackupFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("backup", false, "Backup the document before modifying it")
	_ = v.BindPFlag("backup", flags.Lookup("backup"))
}

func contentFileFlag(v *viper.Viper) string {
	return v.GetString("content_file")
}

func addContentFileFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("content-file", "", "Read the new content from this file, - for stdin")
	_ = v.BindPFlag("content_file", flags.Lookup("content-file"))
}

// setFlag is read from the flag set directly, viper would lowercase the section keys
func setFlag(flags *pflag.FlagSet) map[string]string {
	sets, _ := flags.GetStringToString("set")
	return sets
}

func addSetFlag(flags *pflag.FlagSet) {
	flags.StringToString("set", nil, "Replace several sections at once, key=content-file pairs")
}

func fromFlag(v *viper.Viper) string {
	return v.GetString("restore.from")
}

func addFromFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("from", "", "Restore from this backup file instead of the latest backup")
	_ = v.BindPFlag("restore.from", flags.Lookup("from"))
}

func noBackupFlag(v *viper.Viper) bool {
	return v.GetBool("restore.no_backup")
}

func addNoBackupFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("no-backup", false, "Do not backup the current content before restoring")
	_ = v.BindPFlag("restore.no_backup", flags.Lookup("no-backup"))
}

func concurrencyFlag(v *viper.Viper) int {
	return v.GetInt("concurrency")
}

func addConcurrencyFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("concurrency", 4, "Number of files backed up in parallel")
	_ = v.BindPFlag("concurrency", flags.Lookup("concurrency"))
}
