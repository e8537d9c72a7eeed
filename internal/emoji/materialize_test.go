package emoji

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type materializeFixture struct {
	paths      Paths
	downloader *MockDownloader
	logs       *observer.ObservedLogs
	m          *Materializer
}

func newMaterializeFixture(t *testing.T, workers int) *materializeFixture {
	t.Helper()
	paths := newTestPaths(t)

	imageDir := t.TempDir()
	writeFile(t, filepath.Join(imageDir, "1.png"), "smile-image")
	writeFile(t, filepath.Join(imageDir, "2.png"), "flag-image")
	basic := NewBasicTable([]BasicEntry{
		{ShortName: "smile", ShortNames: []string{"smile", "grin"}, Image: "1.png", Unified: "1F604"},
		{ShortName: "flag-us", ShortNames: []string{"flag-us"}, Image: "2.png", Unified: "1F1FA-1F1F8"},
		{ShortName: "ghost", ShortNames: []string{"ghost"}, Image: "missing.png", Unified: "1F47B"},
	}, imageDir)

	core, logs := observer.New(zapcore.DebugLevel)
	downloader := NewMockDownloader(gomock.NewController(t))
	return &materializeFixture{
		paths:      paths,
		downloader: downloader,
		logs:       logs,
		m:          NewMaterializer(paths, basic, downloader, zap.New(core), workers),
	}
}

func TestMaterialize_CopiesBasicBySecondaryName(t *testing.T) {
	f := newMaterializeFixture(t, 1)

	result := f.m.Materialize(context.Background(), []string{"grin"}, nil)

	if result.Copied != 1 {
		t.Errorf("Copied: got %d, want 1", result.Copied)
	}
	if result.Downloaded != 0 || len(result.Failures) != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
	data, err := os.ReadFile(filepath.Join(f.paths.BasicDir, "1.png"))
	if err != nil {
		t.Fatalf("copied image missing: %v", err)
	}
	if string(data) != "smile-image" {
		t.Errorf("content: got %q", data)
	}
}

func TestMaterialize_BaseNameFallback(t *testing.T) {
	f := newMaterializeFixture(t, 1)

	result := f.m.Materialize(context.Background(), []string{"flag-us::skin-tone-2"}, map[string]string{})

	if result.Copied != 1 {
		t.Errorf("Copied: got %d, want 1 (failures %v)", result.Copied, result.Failures)
	}
	if _, err := os.Stat(filepath.Join(f.paths.BasicDir, "2.png")); err != nil {
		t.Errorf("expected 2.png to be copied: %v", err)
	}
}

func TestMaterialize_DownloadsResolvedAlias(t *testing.T) {
	f := newMaterializeFixture(t, 1)
	list := map[string]string{
		"a": "alias:b",
		"b": "alias:c",
		"c": "https://emoji.slack-edge.com/T1/c/123.gif?v=2",
	}

	wantDest := filepath.Join(f.paths.EmojiDir, "c.gif")
	f.downloader.EXPECT().
		DownloadURL(gomock.Any(), "https://emoji.slack-edge.com/T1/c/123.gif?v=2", wantDest).
		Return(nil)

	result := f.m.Materialize(context.Background(), []string{"a"}, list)

	if result.Downloaded != 1 {
		t.Errorf("Downloaded: got %d, want 1 (failures %v)", result.Downloaded, result.Failures)
	}
	if result.Summary() != "Downloaded 1 custom emoji and copied 0 basic emoji (1/1)" {
		t.Errorf("Summary: got %q", result.Summary())
	}
	if f.logs.FilterLevelExact(zapcore.InfoLevel).FilterMessage(result.Summary()).Len() != 1 {
		t.Error("expected summary logged at info level")
	}
}

func TestMaterialize_CustomWinsOverBasic(t *testing.T) {
	f := newMaterializeFixture(t, 1)
	list := map[string]string{"smile": "https://emoji.slack-edge.com/T1/smile/1.png"}

	f.downloader.EXPECT().
		DownloadURL(gomock.Any(), list["smile"], filepath.Join(f.paths.EmojiDir, "smile.png")).
		Return(nil)

	result := f.m.Materialize(context.Background(), []string{"smile"}, list)
	if result.Downloaded != 1 || result.Copied != 0 {
		t.Errorf("result: got %+v, want one download", result)
	}
}

func TestMaterialize_FailuresDoNotStopBatch(t *testing.T) {
	f := newMaterializeFixture(t, 1)
	list := map[string]string{
		"broken":  "https://emoji.slack-edge.com/T1/broken/1.png",
		"dangle":  "alias:gone",
		"loop":    "alias:loop",
		"noext":   "https://emoji.slack-edge.com/T1/noext/file",
		"working": "https://emoji.slack-edge.com/T1/working/1.jpg",
	}

	netErr := errors.New("connection reset")
	f.downloader.EXPECT().
		DownloadURL(gomock.Any(), list["broken"], gomock.Any()).
		Return(netErr)
	f.downloader.EXPECT().
		DownloadURL(gomock.Any(), list["working"], filepath.Join(f.paths.EmojiDir, "working.jpg")).
		Return(nil)

	names := []string{"broken", "dangle", "smile", "loop", "unknown", "noext", "ghost", "working"}
	result := f.m.Materialize(context.Background(), names, list)

	if result.Total != len(names) {
		t.Errorf("Total: got %d, want %d", result.Total, len(names))
	}
	if result.Downloaded != 1 {
		t.Errorf("Downloaded: got %d, want 1", result.Downloaded)
	}
	if result.Copied != 1 {
		t.Errorf("Copied: got %d, want 1", result.Copied)
	}

	wantFailed := []string{"broken", "dangle", "loop", "unknown", "noext", "ghost"}
	if len(result.Failures) != len(wantFailed) {
		t.Fatalf("Failures: got %v, want %v", result.Failures, wantFailed)
	}
	for i, name := range wantFailed {
		if result.Failures[i].Name != name {
			t.Errorf("Failures[%d]: got %q, want %q", i, result.Failures[i].Name, name)
		}
	}

	if !errors.Is(result.Failures[0].Err, ErrDownloadFailed) || !errors.Is(result.Failures[0].Err, netErr) {
		t.Errorf("broken: got %v, want ErrDownloadFailed wrapping network error", result.Failures[0].Err)
	}
	if !errors.Is(result.Failures[1].Err, ErrUnresolvableReference) {
		t.Errorf("dangle: got %v, want ErrUnresolvableReference", result.Failures[1].Err)
	}
	var cycleErr *CyclicAliasError
	if !errors.As(result.Failures[2].Err, &cycleErr) {
		t.Errorf("loop: got %v, want *CyclicAliasError", result.Failures[2].Err)
	}
	if !errors.Is(result.Failures[3].Err, ErrAssetNotFound) || result.Failures[3].Kind != KindBasic {
		t.Errorf("unknown: got %v (%s), want ErrAssetNotFound", result.Failures[3].Err, result.Failures[3].Kind)
	}
	if !errors.Is(result.Failures[4].Err, ErrDownloadFailed) {
		t.Errorf("noext: got %v, want ErrDownloadFailed", result.Failures[4].Err)
	}

	if f.logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage(result.Summary()).Len() != 1 {
		t.Error("expected summary logged at warn level")
	}
	if f.logs.FilterMessage("Unable to find the emoji neither in custom nor basic emoji").Len() != 1 {
		t.Error("expected not-found warning for unknown")
	}
}

func TestMaterialize_ParallelKeepsCountsAndOrder(t *testing.T) {
	f := newMaterializeFixture(t, 4)
	list := map[string]string{}
	var names []string
	for _, n := range []string{"e0", "e1", "e2", "e3", "e4", "e5", "e6", "e7"} {
		list[n] = "https://emoji.slack-edge.com/T1/" + n + "/x.png"
		names = append(names, n)
	}
	names = append(names, "smile", "nope-1", "nope-2")

	f.downloader.EXPECT().
		DownloadURL(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url, dest string) error {
			if url == list["e3"] || url == list["e6"] {
				return errors.New("boom")
			}
			return nil
		}).
		Times(8)

	result := f.m.Materialize(context.Background(), names, list)

	if result.Downloaded != 6 || result.Copied != 1 {
		t.Errorf("counts: got downloaded=%d copied=%d, want 6 and 1", result.Downloaded, result.Copied)
	}
	want := []string{"e3", "e6", "nope-1", "nope-2"}
	if len(result.Failures) != len(want) {
		t.Fatalf("Failures: got %v, want %v", result.Failures, want)
	}
	for i, name := range want {
		if result.Failures[i].Name != name {
			t.Errorf("Failures[%d]: got %q, want %q", i, result.Failures[i].Name, name)
		}
	}
}

func TestMaterialize_CancelledContext(t *testing.T) {
	f := newMaterializeFixture(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list := map[string]string{"custom": "https://emoji.slack-edge.com/T1/custom/1.png"}
	result := f.m.Materialize(ctx, []string{"custom", "smile"}, list)

	if result.Succeeded() != 0 {
		t.Errorf("Succeeded: got %d, want 0", result.Succeeded())
	}
	for _, failure := range result.Failures {
		if !errors.Is(failure.Err, context.Canceled) {
			t.Errorf("%s: got %v, want context.Canceled", failure.Name, failure.Err)
		}
	}
	if len(result.Failures) != 2 {
		t.Errorf("Failures: got %d, want 2", len(result.Failures))
	}
}

func TestExtensionOf(t *testing.T) {
	tests := map[string]string{
		"https://emoji.slack-edge.com/T1/x/abc.png":       ".png",
		"https://emoji.slack-edge.com/T1/x/abc.gif?v=1":   ".gif",
		"https://avatars.slack-edge.com/2020/team_230.jpg": ".jpg",
		"https://example.com/noext":                        "",
	}
	for in, want := range tests {
		if got := extensionOf(in); got != want {
			t.Errorf("extensionOf(%q): got %q, want %q", in, got, want)
		}
	}
}
