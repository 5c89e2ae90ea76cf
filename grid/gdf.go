package grid

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

const (
	lzwLitwidth int = 8
)

//Write!

// GdfW writes grid fields to a gdf file. Build it with NewWriter.
type GdfW struct {
	f         *os.File
	h         io.WriteCloser
	npoints   int
	filename  string
	writeable bool
}

// Close flushes and closes the file. The writer can not be used after
// this call.
func (W *GdfW) Close() {
	if W == nil {
		return
	}
	if W.writeable {
		W.h.Close()
		W.f.Close()
	}
	W.writeable = false
}

// Len returns the number of grid points per field.
func (W *GdfW) Len() int {
	return W.npoints
}

// WNext writes one more field to the file. field must hold one value per
// grid point.
func (W *GdfW) WNext(field []float64) error {
	if !W.writeable {
		return Error{"file not writeable, it was probably closed", W.filename, []string{"WNext"}, true}
	}
	if field == nil {
		return Error{"nil field given", W.filename, []string{"WNext"}, true}
	}
	if len(field) != W.npoints {
		return Error{fmt.Sprintf("%d values given, but %d expected", len(field), W.npoints), W.filename, []string{"WNext"}, true}
	}
	for _, v := range field {
		W.h.Write([]byte(strconv.FormatFloat(v, 'g', -1, 64)))
		W.h.Write([]byte{'\n'})
	}
	W.h.Write([]byte("*\n"))
	return nil
}

// WNextDense writes each row of vals as one field, for direct use with
// the matrices produced by Eval and EvalDeriv.
func (W *GdfW) WNextDense(vals *mat.Dense) error {
	if vals == nil {
		return Error{"nil matrix given", W.filename, []string{"WNextDense"}, true}
	}
	r, _ := vals.Dims()
	for i := 0; i < r; i++ {
		if err := W.WNext(vals.RawRowView(i)); err != nil {
			return errDecorate(err, "WNextDense")
		}
	}
	return nil
}

// NewWriter opens a gdf file for writing fields of npoints values each.
// The compression is selected from the file extension (see the package
// documentation). header may be nil; when the writer comes from
// NewGridWriter the grid geometry is already in it. compressionLevel is
// only honored by the flate and gzip codecs.
func NewWriter(name string, npoints int, header map[string]string, compressionLevel ...int) (*GdfW, error) {
	var level int = 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	if npoints <= 0 {
		return nil, Error{fmt.Sprintf("%d points per field requested", npoints), name, []string{"NewWriter"}, true}
	}
	W := new(GdfW)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		r, err := flate.NewWriter(a, level)
		return r, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = zwriter
	case 'f', 's':
		AnyNewWriter = zstdwriter
	default:
		AnyNewWriter = zstdwriter
	}
	W.h, err = AnyNewWriter(W.f)
	if err != nil {
		return nil, Error{"Can't open compressed stream: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.npoints = npoints
	W.filename = name
	W.writeable = true
	for k, v := range header {
		W.h.Write([]byte(fmt.Sprintf("%s=%v\n", k, v)))
	}
	W.h.Write([]byte(fmt.Sprintf("** %d\n", W.npoints)))
	return W, nil
}

// NewGridWriter is NewWriter with the geometry of G recorded in the
// header, so readers can rebuild the grid.
func NewGridWriter(name string, G Grid, compressionLevel ...int) (*GdfW, error) {
	if err := G.Check(); err != nil {
		return nil, errDecorate(err, "NewGridWriter")
	}
	header := map[string]string{
		"origin": fmt.Sprintf("%g %g %g", G.Origin[0], G.Origin[1], G.Origin[2]),
		"step":   fmt.Sprintf("%g %g %g", G.Step[0], G.Step[1], G.Step[2]),
		"shape":  fmt.Sprintf("%d %d %d", G.Shape[0], G.Shape[1], G.Shape[2]),
	}
	W, err := NewWriter(name, G.NPoints(), header, compressionLevel...)
	if err != nil {
		return nil, err
	}
	return W, nil
}

//Read!

// GdfR reads grid fields from a gdf file. Build it with New.
type GdfR struct {
	f            *os.File
	z            io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	npoints      int
	filename     string
	readable     bool
}

// zstd.Decoder.Close returns nothing, so it doesn't implement
// io.ReadCloser by itself.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

// New opens a gdf file for reading and returns the handle, a map with
// the header metadata (nil if the header holds nothing but the point
// count) and error or nil.
func New(name string) (*GdfR, map[string]string, error) {
	R := new(GdfR)
	R.npoints = -1 //just so we know if things don't work
	var m map[string]string
	var err error
	R.filename = name
	R.f, err = os.Open(R.filename)
	if err != nil {
		return nil, nil, err
	}
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(a), nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = gzreader
	case 'r':
		AnyNewReader = zreader
	case 'f', 's':
		AnyNewReader = zstdreader
	default:
		AnyNewReader = zstdreader
	}
	R.intermediate = bufio.NewReader(R.f)
	R.z, err = AnyNewReader(R.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't open compressed stream: " + err.Error(), R.filename, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.z)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header: " + err.Error(), R.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read point count from '%s'", str), R.filename, []string{"New"}, true}
			}
			R.npoints, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read point count from '%s': %s", fields[1], err.Error()), R.filename, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			log.Printf("gdf file %s: skipping malformed header line '%s'", R.filename, str)
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	R.readable = true
	return R, m, nil
}

// Readable returns true if it is possible to call Next on the handle.
func (R *GdfR) Readable() bool {
	return R.readable
}

// Len returns the number of grid points per field.
func (R *GdfR) Len() int {
	return R.npoints
}

// Next reads the next field into field, which must hold one element per
// grid point. It returns io.EOF, and closes nothing, when the file holds
// no more fields.
func (R *GdfR) Next(field []float64) error {
	if !R.readable {
		return Error{"file not open for reading", R.filename, []string{"Next"}, true}
	}
	if len(field) != R.npoints {
		return Error{fmt.Sprintf("buffer holds %d values, but fields have %d", len(field), R.npoints), R.filename, []string{"Next"}, true}
	}
	for i := 0; i < R.npoints; i++ {
		str, err := R.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 && strings.TrimSpace(str) == "" {
				return io.EOF
			}
			return Error{"Truncated field: " + err.Error(), R.filename, []string{"Next"}, true}
		}
		field[i], err = strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return Error{"Ill-formated value line: " + err.Error(), R.filename, []string{"Next"}, true}
		}
	}
	str, err := R.h.ReadString('\n')
	if err != nil && err != io.EOF {
		return Error{"Can't read field terminator: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	if strings.TrimSpace(str) != "*" {
		return Error{fmt.Sprintf("Expected field terminator, got '%s'", strings.TrimSpace(str)), R.filename, []string{"Next"}, true}
	}
	return nil
}

// Close closes the handle. It can not be used after this call.
func (R *GdfR) Close() {
	if R == nil || !R.readable {
		return
	}
	R.z.Close()
	R.f.Close()
	R.readable = false
}

//Errors

// Error implements the gbasis Errer interface plus the name of the
// offending file, when there is one.
type Error struct {
	message  string
	filename string //the file with problems, or an empty string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("grid error: %s", err.message)
	}
	return fmt.Sprintf("gdf file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error, and returns the
// accumulated decoration.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

type errorInt interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}
