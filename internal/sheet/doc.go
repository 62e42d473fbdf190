// Package sheet builds and validates sample manifests for nanopore
// methylation pipelines. Manifests are generated from a recursive directory
// scan and written as YAML or TSV.
//
// # Samples Manifest
//
// The samples manifest maps a sample name to the files backing it:
//
//	samples:
//	  sample1:
//	    - /data/run1/sample1.fast5
//	    - /data/run2/sample1.fast5
//	  sample2:
//	    - /data/run1/sample2.fast5
//
// # Tumor-Normal Manifest
//
// The tumor-normal manifest nests samples under patient and sample type:
//
//	SAMPLES:
//	  SHAH_H000033:
//	    TUMOR:
//	      SHAH_H000033_T01: /data/SHAH_H000033_T01.sorted.bam
//	    NORMAL:
//	      SHAH_H000033_N01: /data/SHAH_H000033_N01.sorted.bam
//
// # Usage
//
// Generate a samples manifest:
//
//	gen := sheet.NewGenerator(log, writer)
//	path, err := gen.SamplesYAML(ctx, sheet.SamplesOptions{
//	    Directory: "/data/runs",
//	    Extension: ".fast5",
//	})
//
// # Error Handling
//
// Generation fails fast with sentinel errors from the domain package:
//   - domain.ErrDirectoryNotFound: scan directory does not exist
//   - domain.ErrOutputExists: output present and overwrite not forced
//   - domain.ErrInvalidManifest: validated file has the wrong structure
//
// A scan with zero matches is not an error: an empty manifest is written and
// a warning is logged.
package sheet
