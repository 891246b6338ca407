package discovery

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/logging"
	"github.com/vango-dev/gallery/pkg/page"
)

func TestConventionLogicalPath(t *testing.T) {
	tsx := Convention{Root: "./artifacts/", Ext: ".tsx", Index: DefaultIndex}
	anyExt := DefaultConvention()

	tests := []struct {
		conv   Convention
		source string
		want   string
	}{
		{tsx, "./artifacts/foo.tsx", "foo"},
		{tsx, "./artifacts/group/item.tsx", "group/item"},
		{tsx, "./artifacts/directory.tsx", "directory"},
		{tsx, `./artifacts\a\b.tsx`, "a/b"},
		{tsx, "./artifacts/foo.tsx.tsx", "foo.tsx"},
		{anyExt, "artifacts/a/b.md", "a/b"},
		{anyExt, "artifacts/a/b.html", "a/b"},
		{anyExt, "artifacts/a/b.c.md", "a/b.c"},
	}

	for _, tt := range tests {
		if got := tt.conv.LogicalPath(tt.source); got != tt.want {
			t.Errorf("LogicalPath(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}

	if !tsx.IsIndex("./artifacts/directory.tsx") {
		t.Error("IsIndex(directory.tsx) = false")
	}
	if tsx.IsIndex("./artifacts/sub/directory.tsx") {
		t.Error("nested directory.tsx is not the reserved index")
	}
}

func TestConventionValidate(t *testing.T) {
	conv := Convention{Root: "./artifacts/", Ext: ".tsx", Index: DefaultIndex}

	valid := []string{"./artifacts/foo.tsx", "./artifacts/a/b/c.tsx"}
	for _, s := range valid {
		if err := conv.Validate(s); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{
		"./pages/foo.tsx",
		"./artifacts/foo.md",
		"./artifacts/.tsx",
		"./artifacts/a//b.tsx",
		"./artifacts/../x.tsx",
		"./artifacts/a/.tsx",
	}
	for _, s := range invalid {
		if err := conv.Validate(s); !errors.HasCode(err, "E202") {
			t.Errorf("Validate(%q) = %v, want E202", s, err)
		}
	}
}

func TestModules(t *testing.T) {
	mods, err := NewModules(
		Module{Source: "b"},
		Module{Source: "a"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if mods.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", mods.Len())
	}

	all := mods.All()
	if all[0].Source != "b" || all[1].Source != "a" {
		t.Errorf("order = %v, want insertion order", all)
	}
	all[0].Source = "mutated"
	if mods.All()[0].Source != "b" {
		t.Error("All() should return a copy")
	}

	if _, ok := mods.Get("a"); !ok {
		t.Error("Get(a) not found")
	}
	if _, ok := mods.Get("zzz"); ok {
		t.Error("Get(zzz) found")
	}

	if err := mods.Add(Module{Source: "a"}); !errors.HasCode(err, "E201") {
		t.Errorf("duplicate Add = %v, want E201", err)
	}
	if _, err := NewModules(Module{Source: "x"}, Module{Source: "x"}); err == nil {
		t.Error("NewModules with duplicates should fail")
	}
}

func TestMustModulesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustModules should panic on duplicates")
		}
	}()
	MustModules(Module{Source: "x"}, Module{Source: "x"})
}

func TestFromMapSortsSources(t *testing.T) {
	mods := FromMap(map[string]Module{
		"./artifacts/b.tsx":   {},
		"./artifacts/a/x.tsx": {},
		"./artifacts/a.tsx":   {Source: "ignored"},
	})

	want := []string{"./artifacts/a.tsx", "./artifacts/a/x.tsx", "./artifacts/b.tsx"}
	all := mods.All()
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i].Source != want[i] {
			t.Errorf("all[%d].Source = %q, want %q", i, all[i].Source, want[i])
		}
	}
}

func TestModulesValidate(t *testing.T) {
	conv := Convention{Root: "./artifacts/", Ext: ".tsx"}
	good := MustModules(Module{Source: "./artifacts/a.tsx"})
	if err := good.Validate(conv); err != nil {
		t.Errorf("Validate = %v", err)
	}
	bad := MustModules(Module{Source: "./artifacts/a.tsx"}, Module{Source: "elsewhere.tsx"})
	if err := bad.Validate(conv); !errors.HasCode(err, "E202") {
		t.Errorf("Validate = %v, want E202", err)
	}
}

func TestStatic(t *testing.T) {
	mods := MustModules(Module{Source: "x"})
	got, err := Static(mods).Discover(context.Background())
	if err != nil || got.Len() != 1 {
		t.Errorf("Static.Discover = %d modules, %v", got.Len(), err)
	}
}

func sources(m Modules) []string {
	var out []string
	for _, mod := range m.All() {
		out = append(out, mod.Source)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFSDiscover(t *testing.T) {
	fsys := fstest.MapFS{
		"artifacts/zeta.md":           {Data: []byte("# Zeta\n")},
		"artifacts/alpha.html":        {Data: []byte("<title>Alpha</title><p>a</p>")},
		"artifacts/group/item.md":     {Data: []byte("---\norder: 2\n---\nitem\n")},
		"artifacts/group/_partial.md": {Data: []byte("skip")},
		"artifacts/_drafts/secret.md": {Data: []byte("skip")},
		"artifacts/.hidden/x.md":      {Data: []byte("skip")},
		"artifacts/notes.txt":         {Data: []byte("skip")},
		"artifacts/directory.md":      {Data: []byte("index")},
		"elsewhere/outside.md":        {Data: []byte("skip")},
	}

	src := FS(fsys, DefaultConvention(), WithFSLogger(logging.Discard()))
	mods, err := src.Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"artifacts/alpha.html",
		"artifacts/directory.md",
		"artifacts/group/item.md",
		"artifacts/zeta.md",
	}
	if got := sources(mods); !equalStrings(got, want) {
		t.Errorf("sources = %v, want %v", got, want)
	}

	alpha, _ := mods.Get("artifacts/alpha.html")
	if alpha.Meta == nil || alpha.Meta.Title != "Alpha" {
		t.Errorf("alpha meta = %+v", alpha.Meta)
	}
	if _, ok := alpha.Component.(*page.Page); !ok {
		t.Errorf("component type = %T, want *page.Page", alpha.Component)
	}

	item, _ := mods.Get("artifacts/group/item.md")
	if o, ok := item.Meta.OrderOf(); !ok || o != 2 {
		t.Errorf("item order = %d, %v", o, ok)
	}
}

func TestFSDiscoverDotSlashRoot(t *testing.T) {
	fsys := fstest.MapFS{"artifacts/a.md": {Data: []byte("a")}}
	conv := Convention{Root: "./artifacts/", Ext: ".md", Index: DefaultIndex}

	mods, err := FS(fsys, conv, WithFSLogger(logging.Discard())).Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := sources(mods); !equalStrings(got, []string{"./artifacts/a.md"}) {
		t.Errorf("sources = %v", got)
	}
	if err := mods.Validate(conv); err != nil {
		t.Errorf("discovered sources should satisfy the convention: %v", err)
	}
}

func TestFSDiscoverRootAtFSRoot(t *testing.T) {
	fsys := fstest.MapFS{"a/b.md": {Data: []byte("b")}}
	conv := Convention{Root: "", Index: DefaultIndex}

	mods, err := FS(fsys, conv, WithFSLogger(logging.Discard())).Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := sources(mods); !equalStrings(got, []string{"a/b.md"}) {
		t.Errorf("sources = %v", got)
	}
}

func TestFSDiscoverMissingRoot(t *testing.T) {
	mods, err := FS(fstest.MapFS{}, DefaultConvention(), WithFSLogger(logging.Discard())).Discover(context.Background())
	if err != nil {
		t.Fatalf("missing root should not fail: %v", err)
	}
	if mods.Len() != 0 {
		t.Errorf("Len() = %d, want 0", mods.Len())
	}
}

func TestFSDiscoverParseError(t *testing.T) {
	fsys := fstest.MapFS{"artifacts/bad.md": {Data: []byte("---\ntitle: x\n")}}
	_, err := FS(fsys, DefaultConvention(), WithFSLogger(logging.Discard())).Discover(context.Background())
	if !errors.HasCode(err, "E204") {
		t.Errorf("err = %v, want E204", err)
	}
}

func TestFSDiscoverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{"artifacts/a.md": {Data: []byte("a")}}
	_, err := FS(fsys, DefaultConvention(), WithFSLogger(logging.Discard())).Discover(ctx)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// fakeS3 serves objects in two listing pages.
type fakeS3 struct {
	objects map[string]string
	pages   [][]string
	getErr  error
	gets    []string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	i := 0
	if in.ContinuationToken != nil {
		i = 1
	}
	out := &s3.ListObjectsV2Output{}
	for _, key := range f.pages[i] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	if i+1 < len(f.pages) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String("next")
	} else {
		out.IsTruncated = aws.Bool(false)
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := aws.ToString(in.Key)
	f.gets = append(f.gets, key)
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(f.objects[key])))}, nil
}

func TestS3Discover(t *testing.T) {
	client := &fakeS3{
		objects: map[string]string{
			"artifacts/a.md":       "# A\n",
			"artifacts/group/b.md": "---\ntitle: Bee\n---\nb",
		},
		pages: [][]string{
			{"artifacts/", "artifacts/a.md", "artifacts/_draft.md"},
			{"artifacts/group/b.md", "artifacts/readme.txt", "artifacts/_x/y.md"},
		},
	}

	src := S3(client, "bucket", DefaultConvention(), WithS3Logger(logging.Discard()))
	mods, err := src.Discover(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"artifacts/a.md", "artifacts/group/b.md"}
	if got := sources(mods); !equalStrings(got, want) {
		t.Errorf("sources = %v, want %v", got, want)
	}
	if !equalStrings(client.gets, want) {
		t.Errorf("GetObject keys = %v, want %v", client.gets, want)
	}

	b, _ := mods.Get("artifacts/group/b.md")
	if b.Meta.TitleOr("") != "Bee" {
		t.Errorf("b title = %q", b.Meta.TitleOr(""))
	}
}

func TestS3DiscoverErrors(t *testing.T) {
	client := &fakeS3{
		pages:  [][]string{{"artifacts/a.md"}},
		getErr: stderrors.New("access denied"),
	}
	_, err := S3(client, "bucket", DefaultConvention(), WithS3Logger(logging.Discard())).Discover(context.Background())
	if !errors.HasCode(err, "E205") {
		t.Errorf("err = %v, want E205", err)
	}

	big := &fakeS3{
		objects: map[string]string{"artifacts/a.md": "0123456789"},
		pages:   [][]string{{"artifacts/a.md"}},
	}
	_, err = S3(big, "bucket", DefaultConvention(), WithMaxObjectSize(4), WithS3Logger(logging.Discard())).Discover(context.Background())
	if !errors.HasCode(err, "E205") {
		t.Errorf("oversized object: err = %v, want E205", err)
	}
}

func TestNewS3Client(t *testing.T) {
	c := NewS3Client(S3ClientOptions{Region: "eu-west-1", Endpoint: "http://localhost:9000", PathStyle: true})
	if c == nil {
		t.Fatal("NewS3Client returned nil")
	}
	opts := c.Options()
	if opts.Region != "eu-west-1" || !opts.UsePathStyle {
		t.Errorf("options = %+v", opts)
	}
	if aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" {
		t.Errorf("BaseEndpoint = %q", aws.ToString(opts.BaseEndpoint))
	}
}
