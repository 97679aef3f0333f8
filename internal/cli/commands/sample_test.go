package commands

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSample_SingleDate(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	// The trailing "!" stands in for the stray character the legacy
	// producer leaves on every line's last column.
	writeArchive(t, drops, "Ticks_20240101.zip",
		"name,time,flag\na,10:00:00,x!\nb,10:10:00,y!\nc,10:20:00,z!\n")

	_, err := runCommand(t, NewSampleCommand(),
		"--file-folder", drops,
		"--file-prefix", "Ticks",
		"--file-date", "20240101",
		"--timestamp-column", "1",
		"--timestamp-format", "%H:%M:%S",
		"--timestamp-delta", "00:15:00",
		"--output-folder", out,
	)
	if err != nil {
		t.Fatalf("sample error = %v", err)
	}

	got := readFile(t, filepath.Join(out, "Samples_Ticks_20240101.csv"))
	want := "name,time,flag\na,10:00:00,x\nc,10:20:00,z\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunSample_BaselineResetsBetweenFiles(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	writeArchive(t, drops, "Ticks_20240101.zip",
		"name,time,flag\na,23:50:00,x!\n")
	// File B opens within the delta of file A's last sample; its first
	// row must still be kept.
	writeArchive(t, drops, "Ticks_20240102.zip",
		"name,time,flag\nb,23:55:00,y!\n")

	_, err := runCommand(t, NewSampleCommand(),
		"--file-folder", drops,
		"--file-prefix", "Ticks",
		"--file-start-date", "20240101",
		"--file-end-date", "20240102",
		"--timestamp-column", "1",
		"--timestamp-format", "%H:%M:%S",
		"--output-folder", out,
	)
	if err != nil {
		t.Fatalf("sample error = %v", err)
	}

	got := readFile(t, filepath.Join(out, "Samples_Ticks_20240101-20240102.csv"))
	want := "name,time,flag\na,23:50:00,x\nb,23:55:00,y\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunSample_HeaderWrittenOnceAcrossFiles(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	writeArchive(t, drops, "Ticks_20240101.zip", "name,time,flag\na,10:00:00,x!\n")
	writeArchive(t, drops, "Ticks_20240102.zip", "name,time,flag\nb,11:00:00,y!\n")

	_, err := runCommand(t, NewSampleCommand(),
		"--file-folder", drops,
		"--file-prefix", "Ticks",
		"--file-start-date", "20240101",
		"--file-end-date", "20240102",
		"--timestamp-column", "1",
		"--timestamp-format", "%H:%M:%S",
		"--output-folder", out,
	)
	if err != nil {
		t.Fatalf("sample error = %v", err)
	}

	got := readFile(t, filepath.Join(out, "Samples_Ticks_20240101-20240102.csv"))
	if strings.Count(got, "name,time,flag\n") != 1 {
		t.Errorf("output = %q, want the header exactly once", got)
	}
}

func TestRunSample_ProjectionApplied(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	writeArchive(t, drops, "Ticks_20240101.zip",
		"name,time,flag\na,10:00:00,x!\n")

	_, err := runCommand(t, NewSampleCommand(),
		"--file-folder", drops,
		"--file-date", "20240101",
		"--timestamp-column", "1",
		"--timestamp-format", "%H:%M:%S",
		"--output-folder", out,
		"--output-columns", "1-3",
	)
	if err != nil {
		t.Fatalf("sample error = %v", err)
	}

	got := readFile(t, filepath.Join(out, "Samples_20240101.csv"))
	want := "time,flag\n10:00:00,x\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunSample_UnparsableTimestampAborts(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	writeArchive(t, drops, "Ticks_20240101.zip",
		"name,time,flag\na,10:00:00,x!\nb,not-a-time,y!\n")

	_, err := runCommand(t, NewSampleCommand(),
		"--file-folder", drops,
		"--file-date", "20240101",
		"--timestamp-column", "1",
		"--timestamp-format", "%H:%M:%S",
		"--output-folder", out,
	)
	if err == nil {
		t.Error("sample expected error for unparsable timestamp")
	}
}

func TestRunSample_UsageErrors(t *testing.T) {
	drops := t.TempDir()
	out := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "timestamp column zero rejected",
			args: []string{
				"--file-folder", drops, "--file-date", "20240101",
				"--timestamp-column", "0", "--output-folder", out,
			},
		},
		{
			name: "bad delta",
			args: []string{
				"--file-folder", drops, "--file-date", "20240101",
				"--timestamp-column", "1", "--timestamp-delta", "15m",
				"--output-folder", out,
			},
		},
		{
			name: "unsupported format directive",
			args: []string{
				"--file-folder", drops, "--file-date", "20240101",
				"--timestamp-column", "1", "--timestamp-format", "%Q",
				"--output-folder", out,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCommand(t, NewSampleCommand(), tt.args...); err == nil {
				t.Error("sample expected usage error")
			}
		})
	}
}
