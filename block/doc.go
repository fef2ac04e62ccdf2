// Package block stores streams of fixed-size records as compressed,
// checksummed blocks.
//
// Flat interchange files are plain concatenations of records. A block file
// groups them into blocks of up to N records; each block is a 32-byte header
// followed by the compressed payload:
//
//	offset  size  field
//	0       4     magic "OVLB"
//	4       1     version
//	5       1     compression (format.CompressionType)
//	6       2     reserved
//	8       4     record size
//	12      4     record count
//	16      4     raw payload length (count * record size)
//	20      4     stored payload length
//	24      8     xxHash64 of the raw payload
//
// All header integers are little-endian. The header itself is declared with
// package record.
//
// # Writing
//
//	w, err := block.NewWriter(f, recSize, block.WithCompression(format.CompressionZstd))
//	for ... {
//	    fill(rec)
//	    if err := w.Append(rec); err != nil {
//	        return err
//	    }
//	}
//	return w.Close()
//
// # Reading
//
//	rd := block.NewReader(f)
//	defer rd.Close()
//	for {
//	    blk, err := rd.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    for _, err := range blk.Records(rec) {
//	        ...
//	    }
//	}
//
// Writers and readers are not safe for concurrent use.
package block
