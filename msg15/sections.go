package msg15

import "github.com/robert-malhotra/go-seviri/schema"

func satelliteStatus() *schema.Type {
	orbitCoeff := schema.Record(
		schema.F("StartTime", timeShort()),
		schema.F("EndTime", timeShort()),
		schema.F("X", f64s(8)),
		schema.F("Y", f64s(8)),
		schema.F("Z", f64s(8)),
		schema.F("VX", f64s(8)),
		schema.F("VY", f64s(8)),
		schema.F("VZ", f64s(8)),
	)
	attitudeCoeff := schema.Record(
		schema.F("StartTime", timeShort()),
		schema.F("EndTime", timeShort()),
		schema.F("XofSpinAxis", f64s(8)),
		schema.F("YofSpinAxis", f64s(8)),
		schema.F("ZofSpinAxis", f64s(8)),
	)

	return schema.Record(
		schema.F("SatelliteDefinition", schema.Record(
			schema.F("SatelliteId", schema.Uint16()),
			schema.F("NominalLongitude", schema.Float32()),
			schema.F("SatelliteStatus", schema.Uint8()),
		)),
		schema.F("SatelliteOperations", schema.Record(
			schema.F("LastManoeuvreFlag", schema.Bool()),
			schema.F("LastManoeuvreStartTime", timeShort()),
			schema.F("LastManoeuvreEndTime", timeShort()),
			schema.F("LastManoeuvreType", schema.Uint8()),
			schema.F("NextManoeuvreFlag", schema.Bool()),
			schema.F("NextManoeuvreStartTime", timeShort()),
			schema.F("NextManoeuvreEndTime", timeShort()),
			schema.F("NextManoeuvreType", schema.Uint8()),
		)),
		schema.F("Orbit", schema.Record(
			schema.F("PeriodStartTime", timeShort()),
			schema.F("PeriodEndTime", timeShort()),
			schema.F("OrbitPolynomial", schema.Array(orbitCoeff, 100)),
		)),
		schema.F("Attitude", schema.Record(
			schema.F("PeriodStartTime", timeShort()),
			schema.F("PeriodEndTime", timeShort()),
			schema.F("PrincipleAxisOffsetAngle", schema.Float64()),
			schema.F("AttitudePolynomial", schema.Array(attitudeCoeff, 100)),
		)),
		schema.F("SpinRetreatRCStart", schema.Float64()),
		schema.F("UTCCorrelation", schema.Record(
			schema.F("PeriodStartTime", timeShort()),
			schema.F("PeriodEndTime", timeShort()),
			schema.F("OnBoardTimeStart", u8s(7)),
			schema.F("VarOnBoardTimeStart", schema.Float64()),
			schema.F("A1", schema.Float64()),
			schema.F("VarA1", schema.Float64()),
			schema.F("A2", schema.Float64()),
			schema.F("VarA2", schema.Float64()),
		)),
	)
}

func imageAcquisition() *schema.Type {
	return schema.Record(
		schema.F("PlannedAcquisitionTime", schema.Record(
			schema.F("TrueRepeatCycleStart", timeExpanded()),
			schema.F("PlanForwardScanEnd", timeExpanded()),
			schema.F("PlannedRepeatCycleEnd", timeExpanded()),
		)),
		schema.F("RadiometerStatus", schema.Record(
			schema.F("ChannelStatus", u8s(12)),
			schema.F("DetectorStatus", u8s(42)),
		)),
		schema.F("RadiometerSettings", schema.Record(
			schema.F("MDUSamplingDelays", u16s(42)),
			schema.F("HRVFrameOffsets", schema.Record(
				schema.F("MDUNomHRVDelay1", schema.Uint16()),
				schema.F("MDUNomHRVDelay2", schema.Uint16()),
				schema.F("Spare", schema.Uint16()),
				schema.F("MDUNomHRVBreakLine", schema.Uint16()),
			)),
			schema.F("DHSSSynchSelection", schema.Uint8()),
			schema.F("MDUOutGain", u16s(42)),
			schema.F("MDUCoarseGain", u8s(42)),
			schema.F("MDUFineGain", u16s(42)),
			schema.F("MDUNumericalOffset", u16s(42)),
			schema.F("PUGain", u16s(42)),
			schema.F("PUOffset", u16s(27)),
			schema.F("PUBias", u16s(15)),
			schema.F("OperationParameters", schema.Record(
				schema.F("L0_LineCounter", schema.Uint16()),
				schema.F("K1_RetraceLines", schema.Uint16()),
				schema.F("K2_PauseDeciseconds", schema.Uint16()),
				schema.F("K3_RetraceLines", schema.Uint16()),
				schema.F("K4_PauseDeciseconds", schema.Uint16()),
				schema.F("K5_RetraceLines", schema.Uint16()),
				schema.F("XDeepSpaceWindowPosition", schema.Uint8()),
			)),
			schema.F("RefocusingLines", schema.Uint16()),
			schema.F("RefocusingDirection", schema.Uint8()),
			schema.F("RefocusingPosition", schema.Uint16()),
			schema.F("ScanRefPosFlag", schema.Bool()),
			schema.F("ScanRefPosNumber", schema.Uint16()),
			schema.F("ScanRefPosVal", schema.Float32()),
			schema.F("ScanFirstLine", schema.Uint16()),
			schema.F("ScanLastLine", schema.Uint16()),
			schema.F("RetraceStartLine", schema.Uint16()),
		)),
		schema.F("RadiometerOperations", schema.Record(
			schema.F("LastGainChangeFlag", schema.Bool()),
			schema.F("LastGainChangeTime", timeShort()),
			schema.F("Decontamination", schema.Record(
				schema.F("DecontaminationNow", schema.Bool()),
				schema.F("DecontaminationStart", timeShort()),
				schema.F("DecontaminationEnd", timeShort()),
			)),
			schema.F("BBCalScheduled", schema.Bool()),
			schema.F("BBCalibrationType", schema.Uint8()),
			schema.F("BBFirstLine", schema.Uint16()),
			schema.F("BBLastLine", schema.Uint16()),
			schema.F("ColdFocalPlaneOpTemp", schema.Uint16()),
			schema.F("WarmFocalPlaneOpTemp", schema.Uint16()),
		)),
	)
}

func celestialEvents() *schema.Type {
	ephemeris := schema.Ref(EarthMoonSunCoeffName)
	starCoeff := schema.Record(
		schema.F("StarId", schema.Uint16()),
		schema.F("StartTime", timeShort()),
		schema.F("EndTime", timeShort()),
		schema.F("AlphaCoef", f64s(8)),
		schema.F("BetaCoef", f64s(8)),
	)

	return schema.Record(
		schema.F("CelestialBodiesPosition", schema.Record(
			schema.F("PeriodTimeStart", timeShort()),
			schema.F("PeriodTimeEnd", timeShort()),
			schema.F("RelatedOrbitFileTime", schema.Text(15)),
			schema.F("RelatedAttitudeFileTime", schema.Text(15)),
			schema.F("EarthEphemeris", schema.Array(ephemeris, 100)),
			schema.F("MoonEphemeris", schema.Array(ephemeris, 100)),
			schema.F("SunEphemeris", schema.Array(ephemeris, 100)),
			schema.F("StarEphemeris", schema.Array(starCoeff, 20, 100)),
		)),
		schema.F("RelationToImage", schema.Record(
			schema.F("TypeOfEclipse", schema.Uint8()),
			schema.F("EclipseStartTime", timeShort()),
			schema.F("EclipseEndTime", timeShort()),
			schema.F("VisibleBodiesInImage", schema.Uint8()),
			schema.F("BodiesCloseToFOV", schema.Uint8()),
			schema.F("ImpactOnImageQuality", schema.Uint8()),
		)),
	)
}

func imageDescription() *schema.Type {
	return schema.Record(
		schema.F("ProjectionDescription", schema.Record(
			schema.F("TypeOfProjection", schema.Uint8()),
			schema.F("LongitudeOfSSP", schema.Float32()),
		)),
		schema.F("ReferenceGridVIS_IR", schema.Ref(ReferenceGridName)),
		schema.F("ReferenceGridHRV", schema.Ref(ReferenceGridName)),
		schema.F("PlannedCoverageVIS_IR", schema.Record(
			schema.F("SouthernLinePlanned", schema.Int32()),
			schema.F("NorthernLinePlanned", schema.Int32()),
			schema.F("EasternColumnPlanned", schema.Int32()),
			schema.F("WesternColumnPlanned", schema.Int32()),
		)),
		schema.F("PlannedCoverageHRV", schema.Record(
			schema.F("LowerSouthLinePlanned", schema.Int32()),
			schema.F("LowerNorthLinePlanned", schema.Int32()),
			schema.F("LowerEastColumnPlanned", schema.Int32()),
			schema.F("LowerWestColumnPlanned", schema.Int32()),
			schema.F("UpperSouthLinePlanned", schema.Int32()),
			schema.F("UpperNorthLinePlanned", schema.Int32()),
			schema.F("UpperEastColumnPlanned", schema.Int32()),
			schema.F("UpperWestColumnPlanned", schema.Int32()),
		)),
		schema.F("Level15ImageProduction", schema.Record(
			schema.F("ImageProcDirection", schema.Uint8()),
			schema.F("PixelGenDirection", schema.Uint8()),
			schema.F("PlannedChanProcessing", u8s(12)),
		)),
	)
}

func radiometricProcessing() *schema.Type {
	bools12 := schema.Array(schema.Bool(), 12)

	bbRelatedData := schema.Record(
		schema.F("OnBoardBBTime", schema.Record(
			schema.F("CT1", schema.Uint8()),
			schema.F("CT2", schema.Uint8()),
			schema.F("CT3", schema.Uint8()),
			schema.F("CT4", schema.Uint8()),
			schema.F("FT1", schema.Uint8()),
			schema.F("FT2", schema.Uint8()),
			schema.F("FT3", schema.Uint8()),
		)),
		schema.F("MDUOutGain", u16s(42)),
		schema.F("MDUCoarseGain", u8s(42)),
		schema.F("MDUFineGain", u16s(42)),
		schema.F("MDUNumericalOffset", u16s(42)),
		schema.F("PUGain", u16s(42)),
		schema.F("PUOffset", u16s(27)),
		schema.F("PUBias", u16s(15)),
		schema.F("DCRValues", u8s(63)),
		schema.F("X_DeepSpaceWindowPosition", schema.Int8()),
		schema.F("ColdFPTemperature", schema.Record(
			schema.F("FCUNominalColdFocalPlaneTemp", schema.Uint16()),
			schema.F("FCURedundantColdFocalPlaneTemp", schema.Uint16()),
		)),
		schema.F("WarmFPTemperature", schema.Record(
			schema.F("FCUNominalWarmFocalPlaneVHROTemp", schema.Uint16()),
			schema.F("FCURedundantWarmFocalPlaneVHROTemp", schema.Uint16()),
		)),
		schema.F("ScanMirrorTemperature", schema.Record(
			schema.F("FCUNominalScanMirrorSensor1Temp", schema.Uint16()),
			schema.F("FCURedundantScanMirrorSensor1Temp", schema.Uint16()),
			schema.F("FCUNominalScanMirrorSensor2Temp", schema.Uint16()),
			schema.F("FCURedundantScanMirrorSensor2Temp", schema.Uint16()),
		)),
		schema.F("M1M2M3Temperature", schema.Record(
			schema.F("FCUNominalM1MirrorSensor1Temp", schema.Uint16()),
			schema.F("FCURedundantM1MirrorSensor1Temp", schema.Uint16()),
			schema.F("FCUNominalM1MirrorSensor2Temp", schema.Uint16()),
			schema.F("FCURedundantM1MirrorSensor2Temp", schema.Uint16()),
			schema.F("FCUNominalM23AssemblySensor1Temp", schema.Uint8()),
			schema.F("FCURedundantM23AssemblySensor1Temp", schema.Uint8()),
			schema.F("FCUNominalM23AssemblySensor2Temp", schema.Uint8()),
			schema.F("FCURedundantM23AssemblySensor2Temp", schema.Uint8()),
		)),
		schema.F("BaffleTemperature", schema.Record(
			schema.F("FCUNominalM1BaffleTemp", schema.Uint16()),
			schema.F("FCURedundantM1BaffleTemp", schema.Uint16()),
		)),
		schema.F("BlackBodyTemperature", schema.Record(
			schema.F("FCUNominalBlackBodySensorTemp", schema.Uint16()),
			schema.F("FCURedundantBlackBodySensorTemp", schema.Uint16()),
		)),
		schema.F("FCUMode", schema.Record(
			schema.F("FCUNominalSMMStatus", schema.Text(2)),
			schema.F("FCURedundantSMMStatus", schema.Text(2)),
		)),
		schema.F("ExtractedBBData", schema.Array(schema.Record(
			schema.F("NumberOfPixelsUsed", schema.Uint32()),
			schema.F("MeanCount", schema.Float32()),
			schema.F("RMS", schema.Float32()),
			schema.F("MaxCount", schema.Uint16()),
			schema.F("MinCount", schema.Uint16()),
			schema.F("BB_Processing_Slope", schema.Float64()),
			schema.F("BB_Processing_Offset", schema.Float64()),
		), 12)),
	)

	impfCalData := schema.Record(
		schema.F("ImageQualityFlag", schema.Uint8()),
		schema.F("ReferenceDataFlag", schema.Uint8()),
		schema.F("AbsCalMethod", schema.Uint8()),
		schema.F("Pad1", schema.Text(1)),
		schema.F("AbsCalWeightVic", schema.Float32()),
		schema.F("AbsCalWeightXsat", schema.Float32()),
		schema.F("AbsCalCoeff", schema.Float32()),
		schema.F("AbsCalError", schema.Float32()),
		schema.F("GSICSCalCoeff", schema.Float32()),
		schema.F("GSICSCalError", schema.Float32()),
		schema.F("GSICSOffsetCount", schema.Float32()),
	)

	return schema.Record(
		schema.F("RPSummary", schema.Record(
			schema.F("RadianceLinearization", bools12),
			schema.F("DetectorEqualization", bools12),
			schema.F("OnboardCalibrationResult", bools12),
			schema.F("MPEFCalFeedback", bools12),
			schema.F("MTFAdaptation", bools12),
			schema.F("StrayLightCorrection", bools12),
		)),
		schema.F("Level15ImageCalibration", schema.Array(schema.Record(
			schema.F("CalSlope", schema.Float64()),
			schema.F("CalOffset", schema.Float64()),
		), 12)),
		schema.F("BlackBodyDataUsed", schema.Record(
			schema.F("BBObservationUTC", timeExpanded()),
			schema.F("BBRelatedData", bbRelatedData),
		)),
		schema.F("MPEFCalFeedback", schema.Array(impfCalData, 12)),
		schema.F("RadTransform", f32s(42, 64)),
		schema.F("RadProcMTFAdaptation", schema.Record(
			schema.F("VIS_IRMTFCorrectionE_W", f32s(33, 16)),
			schema.F("VIS_IRMTFCorrectionN_S", f32s(33, 16)),
			schema.F("HRVMTFCorrectionE_W", f32s(9, 16)),
			schema.F("HRVMTFCorrectionN_S", f32s(9, 16)),
			schema.F("StraylightCorrection", f32s(12, 8, 8)),
		)),
	)
}

func geometricProcessing() *schema.Type {
	return schema.Record(
		schema.F("OptAxisDistances", schema.Record(
			schema.F("E-WFocalPlane", f32s(42)),
			schema.F("N_SFocalPlane", f32s(42)),
		)),
		schema.F("EarthModel", schema.Record(
			schema.F("TypeOfEarthModel", schema.Uint8()),
			schema.F("EquatorialRadius", schema.Float64()),
			schema.F("NorthPolarRadius", schema.Float64()),
			schema.F("SouthPolarRadius", schema.Float64()),
		)),
		schema.F("AtmosphericModel", f32s(12, 360)),
		schema.F("ResamplingFunctions", u8s(12)),
	)
}

func impfConfiguration() *schema.Type {
	version := schema.Ref(SoftwareVersionName)
	timeS := func(name string) schema.Field { return schema.F(name, timeShort()) }

	return schema.Record(
		schema.F("OverallConfiguration", version),
		schema.F("SUDetails", schema.Record(
			schema.F("SUId", schema.Uint16()),
			schema.F("SUIdInstance", schema.Uint8()),
			schema.F("SUMode", schema.Uint8()),
			schema.F("SUState", schema.Uint8()),
			schema.F("SUConfiguration", schema.Record(
				schema.F("SWVersion", version),
				schema.F("InfoBaseVersions", schema.Array(version, 10)),
			)),
		)),
		schema.F("WarmStartParams", schema.Record(
			schema.F("ScanningLaw", f64s(1527)),
			schema.F("RadFramesAlignment", f64s(60)),
			schema.F("ScanningLawVariation", f32s(2)),
			schema.F("EqualisationParams", schema.Array(schema.Record(
				schema.F("ConstCoeff", schema.Float32()),
				schema.F("LinearCoeff", schema.Float32()),
				schema.F("QuadraticCoeff", schema.Float32()),
			), 42)),
			schema.F("BlackBodyDataForWarmStart", schema.Record(
				schema.F("GTotalForMethod1", f64s(12)),
				schema.F("GTotalForMethod2", f64s(12)),
				schema.F("GTotalForMethod3", f64s(12)),
				schema.F("GBackForMethod1", f64s(12)),
				schema.F("GBackForMethod2", f64s(12)),
				schema.F("GBackForMethod3", f64s(12)),
				schema.F("RatioGTotalToGBack", f64s(12)),
				schema.F("GainInFrontOpticsCont", f64s(12)),
				schema.F("CalibrationConstants", f32s(12)),
				schema.F("maxIncidentRadiance", f64s(12)),
				schema.F("TimeOfColdObsSeconds", schema.Float64()),
				schema.F("TimeOfColdObsNanoSecs", schema.Float64()),
				schema.F("IncidenceRadiance", f64s(12)),
				schema.F("TempCal", schema.Float64()),
				schema.F("TempM1", schema.Float64()),
				schema.F("TempScan", schema.Float64()),
				schema.F("TempM1Baf", schema.Float64()),
				schema.F("TempCalSurround", schema.Float64()),
			)),
			schema.F("MirrorParameters", schema.Record(
				schema.F("MaxFeedbackVoltage", schema.Float64()),
				schema.F("MinFeedbackVoltage", schema.Float64()),
				schema.F("MirrorSlipEstimate", schema.Float64()),
			)),
			schema.F("LastSpinPeriod", schema.Float64()),
			schema.F("HKTMParameters", schema.Record(
				timeS("TimeS0Packet"),
				timeS("TimeS1Packet"),
				timeS("TimeS2Packet"),
				timeS("TimeS3Packet"),
				timeS("TimeS4Packet"),
				timeS("TimeS5Packet"),
				timeS("TimeS6Packet"),
				timeS("TimeS7Packet"),
				timeS("TimeS8Packet"),
				timeS("TimeS9Packet"),
				timeS("TimeSYPacket"),
				timeS("TimePSPacket"),
			)),
			schema.F("WSPReserved", u8s(3408)),
		)),
	)
}
