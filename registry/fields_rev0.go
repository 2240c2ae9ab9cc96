package registry

import (
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/format"
)

// binaryHeaderFieldsRev0 are the SEG-Y Rev0 binary file header fields, at
// their canonical byte offsets within the 400-byte binary header. Bytes
// the table leaves uncovered (400 minus the last field's end) are
// reserved/unassigned padding, as in the published standard.
func binaryHeaderFieldsRev0() []descriptor.StructuredFieldDescriptor {
	return []descriptor.StructuredFieldDescriptor{
		{Name: "job_id", Offset: 0, Format: format.Int32, Endianness: format.BigEndian, Description: "Job Identification Number"},
		{Name: "line_no", Offset: 4, Format: format.Int32, Endianness: format.BigEndian, Description: "Line Number"},
		{Name: "reel_no", Offset: 8, Format: format.Int32, Endianness: format.BigEndian, Description: "Reel Number"},
		{Name: "data_traces_ensemble", Offset: 12, Format: format.Int16, Endianness: format.BigEndian, Description: "Number of Data Traces per Ensemble"},
		{Name: "aux_traces_ensemble", Offset: 14, Format: format.Int16, Endianness: format.BigEndian, Description: "Number of Auxiliary Traces per Ensemble"},
		{Name: "sample_interval", Offset: 16, Format: format.Int16, Endianness: format.BigEndian, Description: "Sample Interval"},
		{Name: "sample_interval_orig", Offset: 18, Format: format.Int16, Endianness: format.BigEndian, Description: "Sample Interval of Original Field Recording"},
		{Name: "samples_per_trace", Offset: 20, Format: format.Int16, Endianness: format.BigEndian, Description: "Number of Samples per Data Trace"},
		{Name: "samples_per_trace_orig", Offset: 22, Format: format.Int16, Endianness: format.BigEndian, Description: "Number of Samples per Data Trace for Original Field Recording"},
		{Name: "data_sample_format", Offset: 24, Format: format.Int16, Endianness: format.BigEndian, Description: "Data Sample Format Code"},
		{Name: "ensemble_fold", Offset: 26, Format: format.Int16, Endianness: format.BigEndian, Description: "Ensemble Fold"},
		{Name: "trace_sorting", Offset: 28, Format: format.Int16, Endianness: format.BigEndian, Description: "Trace Sorting Code"},
		{Name: "vertical_sum", Offset: 30, Format: format.Int16, Endianness: format.BigEndian, Description: "Vertical Sum Code"},
		{Name: "sweep_freq_start", Offset: 32, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Frequency at Start"},
		{Name: "sweep_freq_end", Offset: 34, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Frequency at End"},
		{Name: "sweep_length", Offset: 36, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Length"},
		{Name: "sweep_type", Offset: 38, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Type Code"},
		{Name: "sweep_trace_no", Offset: 40, Format: format.Int16, Endianness: format.BigEndian, Description: "Trace Number of Sweep Channel"},
		{Name: "sweep_taper_start", Offset: 42, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Trace Taper Length at Start"},
		{Name: "sweep_taper_end", Offset: 44, Format: format.Int16, Endianness: format.BigEndian, Description: "Sweep Trace Taper Length at End"},
		{Name: "taper_type", Offset: 46, Format: format.Int16, Endianness: format.BigEndian, Description: "Taper Type"},
		{Name: "correlated_traces", Offset: 48, Format: format.Int16, Endianness: format.BigEndian, Description: "Correlated Data Traces"},
		{Name: "binary_gain", Offset: 50, Format: format.Int16, Endianness: format.BigEndian, Description: "Binary Gain Recovered"},
		{Name: "amp_recovery_method", Offset: 52, Format: format.Int16, Endianness: format.BigEndian, Description: "Amplitude Recovery Method"},
		{Name: "measurement_system", Offset: 54, Format: format.Int16, Endianness: format.BigEndian, Description: "Measurement System"},
		{Name: "impulse_signal_polarity", Offset: 56, Format: format.Int16, Endianness: format.BigEndian, Description: "Impulse Signal Polarity"},
		{Name: "vibratory_polarity", Offset: 58, Format: format.Int16, Endianness: format.BigEndian, Description: "Vibratory Polarity Code"},
	}
}

// traceHeaderFieldsRev0 are the SEG-Y Rev0 trace header fields, at their
// canonical byte offsets within the 240-byte trace header.
func traceHeaderFieldsRev0() []descriptor.StructuredFieldDescriptor {
	be := format.BigEndian
	i16 := format.Int16
	i32 := format.Int32

	return []descriptor.StructuredFieldDescriptor{
		{Name: "trace_seq_line", Offset: 0, Format: i32, Endianness: be, Description: "Trace Sequence Number within Line"},
		{Name: "trace_seq_file", Offset: 4, Format: i32, Endianness: be, Description: "Trace Sequence Number within File"},
		{Name: "field_rec_no", Offset: 8, Format: i32, Endianness: be, Description: "Original Field Record Number"},
		{Name: "trace_no_field_rec", Offset: 12, Format: i32, Endianness: be, Description: "Trace Number within the Field Record"},
		{Name: "energy_src_pt", Offset: 16, Format: i32, Endianness: be, Description: "Energy Source Point Number"},
		{Name: "cdp_ens_no", Offset: 20, Format: i32, Endianness: be, Description: "Ensemble Number (CDP, CMP, etc.)"},
		{Name: "trace_no_ens", Offset: 24, Format: i32, Endianness: be, Description: "Trace Number within the Ensemble"},
		{Name: "trace_id", Offset: 28, Format: i16, Endianness: be, Description: "Trace Identification Code"},
		{Name: "vert_sum", Offset: 30, Format: i16, Endianness: be, Description: "Number of Vertically Stacked Traces"},
		{Name: "horiz_stack", Offset: 32, Format: i16, Endianness: be, Description: "Number of Horizontally Stacked Traces"},
		{Name: "data_use", Offset: 34, Format: i16, Endianness: be, Description: "Data Use"},
		{Name: "dist_src_to_rec", Offset: 36, Format: i32, Endianness: be, Description: "Distance from Source Point to Receiver Group"},
		{Name: "rec_elev", Offset: 40, Format: i32, Endianness: be, Description: "Receiver Group Elevation"},
		{Name: "src_elev", Offset: 44, Format: i32, Endianness: be, Description: "Source Elevation"},
		{Name: "src_depth", Offset: 48, Format: i32, Endianness: be, Description: "Source Depth"},
		{Name: "datum_elev_rec", Offset: 52, Format: i32, Endianness: be, Description: "Datum Elevation at Receiver Group"},
		{Name: "datum_elev_src", Offset: 56, Format: i32, Endianness: be, Description: "Datum Elevation at Source"},
		{Name: "water_depth_src", Offset: 60, Format: i32, Endianness: be, Description: "Water Depth at Source"},
		{Name: "water_depth_rec", Offset: 64, Format: i32, Endianness: be, Description: "Water Depth at Receiver Group"},
		{Name: "scalar_apply_elev", Offset: 68, Format: i16, Endianness: be, Description: "Scalar to be Applied to All Elevations and Depths"},
		{Name: "scalar_apply_coords", Offset: 70, Format: i16, Endianness: be, Description: "Scalar to be Applied to All Coordinates"},
		{Name: "src_x", Offset: 72, Format: i32, Endianness: be, Description: "Source X Coordinate"},
		{Name: "src_y", Offset: 76, Format: i32, Endianness: be, Description: "Source Y Coordinate"},
		{Name: "rec_x", Offset: 80, Format: i32, Endianness: be, Description: "Receiver X Coordinate"},
		{Name: "rec_y", Offset: 84, Format: i32, Endianness: be, Description: "Receiver Y Coordinate"},
		{Name: "coord_units", Offset: 88, Format: i16, Endianness: be, Description: "Coordinate Units"},
		{Name: "weathering_vel", Offset: 90, Format: i16, Endianness: be, Description: "Weathering Velocity"},
		{Name: "subweathering_vel", Offset: 92, Format: i16, Endianness: be, Description: "Subweathering Velocity"},
		{Name: "uphole_time_src", Offset: 94, Format: i16, Endianness: be, Description: "Uphole Time at Source"},
		{Name: "uphole_time_rec", Offset: 96, Format: i16, Endianness: be, Description: "Uphole Time at Receiver"},
		{Name: "src_static_corr", Offset: 98, Format: i16, Endianness: be, Description: "Source Static Correction"},
		{Name: "rec_static_corr", Offset: 100, Format: i16, Endianness: be, Description: "Receiver Static Correction"},
		{Name: "total_static", Offset: 102, Format: i16, Endianness: be, Description: "Total Static Applied"},
		{Name: "lag_time_a", Offset: 104, Format: i16, Endianness: be, Description: "Lag Time A"},
		{Name: "lag_time_b", Offset: 106, Format: i16, Endianness: be, Description: "Lag Time B"},
		{Name: "delay_rec_time", Offset: 108, Format: i16, Endianness: be, Description: "Delay Recording Time"},
		{Name: "mute_start", Offset: 110, Format: i16, Endianness: be, Description: "Start Time of Mute"},
		{Name: "mute_end", Offset: 112, Format: i16, Endianness: be, Description: "End Time of Mute"},
		{Name: "samples_per_trace", Offset: 114, Format: i16, Endianness: be, Description: "Number of Samples in this Trace"},
		{Name: "sample_interval", Offset: 116, Format: i16, Endianness: be, Description: "Sample Interval for this Trace"},
		{Name: "gain_type", Offset: 118, Format: i16, Endianness: be, Description: "Gain Type of Field Instruments"},
		{Name: "instrument_gain", Offset: 120, Format: i16, Endianness: be, Description: "Instrument Gain Constant"},
		{Name: "instrument_early_gain", Offset: 122, Format: i16, Endianness: be, Description: "Instrument Early Gain"},
		{Name: "correlated", Offset: 124, Format: i16, Endianness: be, Description: "Correlated"},
		{Name: "sweep_freq_start", Offset: 126, Format: i16, Endianness: be, Description: "Sweep Frequency at Start"},
		{Name: "sweep_freq_end", Offset: 128, Format: i16, Endianness: be, Description: "Sweep Frequency at End"},
		{Name: "sweep_length", Offset: 130, Format: i16, Endianness: be, Description: "Sweep Length"},
		{Name: "sweep_type", Offset: 132, Format: i16, Endianness: be, Description: "Sweep Type"},
		{Name: "sweep_trace_taper_start", Offset: 134, Format: i16, Endianness: be, Description: "Sweep Trace Taper Length at Start"},
		{Name: "sweep_trace_taper_end", Offset: 136, Format: i16, Endianness: be, Description: "Sweep Trace Taper Length at End"},
		{Name: "taper_type", Offset: 138, Format: i16, Endianness: be, Description: "Taper Type"},
		{Name: "alias_filter_freq", Offset: 140, Format: i16, Endianness: be, Description: "Alias Filter Frequency"},
		{Name: "alias_filter_slope", Offset: 142, Format: i16, Endianness: be, Description: "Alias Filter Slope"},
		{Name: "notch_filter_freq", Offset: 144, Format: i16, Endianness: be, Description: "Notch Filter Frequency"},
		{Name: "notch_filter_slope", Offset: 146, Format: i16, Endianness: be, Description: "Notch Filter Slope"},
		{Name: "low_cut_freq", Offset: 148, Format: i16, Endianness: be, Description: "Low Cut Frequency"},
		{Name: "high_cut_freq", Offset: 150, Format: i16, Endianness: be, Description: "High Cut Frequency"},
		{Name: "low_cut_slope", Offset: 152, Format: i16, Endianness: be, Description: "Low Cut Slope"},
		{Name: "high_cut_slope", Offset: 154, Format: i16, Endianness: be, Description: "High Cut Slope"},
		{Name: "year", Offset: 156, Format: i16, Endianness: be, Description: "Year Data Recorded"},
		{Name: "day", Offset: 158, Format: i16, Endianness: be, Description: "Day of Year"},
		{Name: "hour", Offset: 160, Format: i16, Endianness: be, Description: "Hour of Day"},
		{Name: "minute", Offset: 162, Format: i16, Endianness: be, Description: "Minute of Hour"},
		{Name: "second", Offset: 164, Format: i16, Endianness: be, Description: "Second of Minute"},
		{Name: "time_basis_code", Offset: 166, Format: i16, Endianness: be, Description: "Time Basis Code"},
		{Name: "trace_weighting_factor", Offset: 168, Format: i16, Endianness: be, Description: "Trace Weighting Factor"},
		{Name: "geophone_group_no_roll1", Offset: 170, Format: i16, Endianness: be, Description: "Geophone Group Number of Roll Switch Position One"},
		{Name: "geophone_group_no_first_trace", Offset: 172, Format: i16, Endianness: be, Description: "Geophone Group Number of Trace Number One within Original Field Record"},
		{Name: "geophone_group_no_last_trace", Offset: 174, Format: i16, Endianness: be, Description: "Geophone Group Number of Last Trace within Original Field Record"},
		{Name: "gap_size", Offset: 176, Format: i16, Endianness: be, Description: "Gap Size (total number of groups dropped)"},
		{Name: "over_travel", Offset: 178, Format: i16, Endianness: be, Description: "Over Travel Associated with Taper"},
	}
}
