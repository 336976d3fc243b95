/*
 * dump.go, part of gopack.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package rotset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	pack "github.com/rmera/gopack"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//compressor returns a writer that compresses into w according to the extension
//of name: zstd for .zst, gzip for .gz, and no compression for anything else.
func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return nopCloser{w}, nil
	}
}

//DumpPDB writes all the rotamers to the file filename, as a multi-model PDB. Model 0
//contains the residues that are not molten, and model k the k-th rotamer of each set that
//has at least k rotamers. The file is compressed if its name ends in .zst or .gz.
func (R *RotamerSets) DumpPDB(pose *pack.Pose, filename string) error {
	out, err := os.Create(filename)
	if err != nil {
		return pack.NewError(err.Error(), filename, "DumpPDB")
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	cw, err := compressor(filename, buf)
	if err != nil {
		return pack.NewError("Can't create compressed writer "+err.Error(), filename, "DumpPDB")
	}
	if err = R.WritePDB(cw, pose); err != nil {
		cw.Close()
		return pack.ErrDecorate(err, "DumpPDB")
	}
	if err = cw.Close(); err != nil {
		return pack.NewError(err.Error(), filename, "DumpPDB")
	}
	if err = buf.Flush(); err != nil {
		return pack.NewError(err.Error(), filename, "DumpPDB")
	}
	return nil
}

//WritePDB writes the rotamers to out, in the format of DumpPDB, without compression.
func (R *RotamerSets) WritePDB(out io.Writer, pose *pack.Pose) error {
	R.mustHaveTask()
	if _, err := fmt.Fprintf(out, "REMARK     ROTAMERS OF RUN %s\n", R.id); err != nil {
		return pack.NewError(err.Error(), "", "WritePDB")
	}
	counter := 0
	if _, err := fmt.Fprintf(out, "MODEL %8d\n", 0); err != nil {
		return pack.NewError(err.Error(), "", "WritePDB")
	}
	for resid := 1; resid <= pose.TotalResidue(); resid++ {
		if R.task.PackResidue(resid) {
			continue
		}
		if err := writeResidue(out, pose.Residue(resid), &counter); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(out, "ENDMDL\n"); err != nil {
		return pack.NewError(err.Error(), "", "WritePDB")
	}
	for model := 1; ; model++ {
		found := false
		for _, set := range R.sets {
			if set.NumRotamers() < model {
				continue
			}
			if !found {
				found = true
				if _, err := fmt.Fprintf(out, "MODEL %8d\n", model); err != nil {
					return pack.NewError(err.Error(), "", "WritePDB")
				}
			}
			if err := writeResidue(out, set.Rotamer(model), &counter); err != nil {
				return err
			}
		}
		if !found {
			break
		}
		if _, err := fmt.Fprint(out, "ENDMDL\n"); err != nil {
			return pack.NewError(err.Error(), "", "WritePDB")
		}
	}
	_, err := fmt.Fprint(out, "END\n")
	if err != nil {
		return pack.NewError(err.Error(), "", "WritePDB")
	}
	return nil
}

//writeResidue writes the ATOM (or HETATM, for non-protein residues) lines of res.
//The atom serial numbers continue from counter.
func writeResidue(out io.Writer, res *pack.Residue, counter *int) error {
	first := "ATOM"
	if !res.Protein {
		first = "HETATM"
	}
	for i, a := range res.Atoms {
		*counter++
		c := res.Coords.RawRowView(i)
		var err error
		switch {
		case len(a.Name) < 4:
			_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", first, *counter%100000, a.Name, res.Name, 'A',
				res.Seqpos()%10000, c[0], c[1], c[2], 1.0, 0.0, a.Symbol)
		case len(a.Name) == 4:
			_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", first, *counter%100000, a.Name, res.Name, 'A',
				res.Seqpos()%10000, c[0], c[1], c[2], 1.0, 0.0, a.Symbol)
		default:
			err = fmt.Errorf("Can't print PDB line for atom %s of %s", a.Name, res)
		}
		if err != nil {
			return pack.NewError(err.Error(), "", "writeResidue")
		}
	}
	return nil
}
