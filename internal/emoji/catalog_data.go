package emoji

// Identifiers referenced by the reaction helpers.
const (
	ThumbsUpSign          ID = "thumbsUpSign"
	ThumbsDownSign        ID = "thumbsDownSign"
	HeavyBlackHeart       ID = "heavyBlackHeart"
	FaceWithTearsOfJoy    ID = "faceWithTearsOfJoy"
	CryingFace            ID = "cryingFace"
	PersonWithFoldedHands ID = "personWithFoldedHands"
)

// catalogEntries is the built-in table in display order. Sort orders step
// by ten.
var catalogEntries = []Entry{
	// smileys & emotion
	{ID: "grinningFace", Default: "\U0001F600", SortOrder: 10, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "smilingFaceWithOpenMouth", Default: "\U0001F603", SortOrder: 20, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "smilingFaceWithOpenMouthAndSmilingEyes", Default: "\U0001F604", SortOrder: 30, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "grinningFaceWithSmilingEyes", Default: "\U0001F601", SortOrder: 40, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "smilingFaceWithOpenMouthAndTightlyClosedEyes", Default: "\U0001F606", SortOrder: 50, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "smilingFaceWithOpenMouthAndColdSweat", Default: "\U0001F605", SortOrder: 60, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "rollingOnTheFloorLaughing", Default: "\U0001F923", SortOrder: 70, Introduced: V(3, 0), Tones: NoTones()},
	{ID: FaceWithTearsOfJoy, Default: "\U0001F602", SortOrder: 80, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "slightlySmilingFace", Default: "\U0001F642", SortOrder: 90, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "upsideDownFace", Default: "\U0001F643", SortOrder: 100, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "meltingFace", Default: "\U0001FAE0", SortOrder: 110, Introduced: V(14, 0), Tones: NoTones()},
	{ID: "winkingFace", Default: "\U0001F609", SortOrder: 120, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "smilingFaceWithSmilingEyes", Default: "\U0001F60A", SortOrder: 130, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "smilingFaceWithHalo", Default: "\U0001F607", SortOrder: 140, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "smilingFaceWithHearts", Default: "\U0001F970", SortOrder: 150, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "smilingFaceWithHeartShapedEyes", Default: "\U0001F60D", SortOrder: 160, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "grinningFaceWithStarEyes", Default: "\U0001F929", SortOrder: 170, Introduced: V(5, 0), Tones: NoTones()},
	{ID: "faceThrowingAKiss", Default: "\U0001F618", SortOrder: 180, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "whiteSmilingFace", Default: "\u263A\uFE0F", SortOrder: 190, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "thinkingFace", Default: "\U0001F914", SortOrder: 200, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "shushingFace", Default: "\U0001F92B", SortOrder: 210, Introduced: V(5, 0), Tones: NoTones()},
	{ID: "faceWithoutMouth", Default: "\U0001F636", SortOrder: 220, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "faceInClouds", Default: "\U0001F636\u200D\U0001F32B\uFE0F", SortOrder: 230, Introduced: V(13, 1), Tones: NoTones()},
	{ID: "smirkingFace", Default: "\U0001F60F", SortOrder: 240, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "unamusedFace", Default: "\U0001F612", SortOrder: 250, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "faceWithRollingEyes", Default: "\U0001F644", SortOrder: 260, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "grimacingFace", Default: "\U0001F62C", SortOrder: 270, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "shakingFace", Default: "\U0001FAE8", SortOrder: 280, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "headShakingHorizontally", Default: "\U0001F642\u200D\u2194\uFE0F", SortOrder: 290, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "headShakingVertically", Default: "\U0001F642\u200D\u2195\uFE0F", SortOrder: 300, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "relievedFace", Default: "\U0001F60C", SortOrder: 310, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "pensiveFace", Default: "\U0001F614", SortOrder: 320, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "sleepyFace", Default: "\U0001F62A", SortOrder: 330, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "sleepingFace", Default: "\U0001F634", SortOrder: 340, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "faceWithBagsUnderEyes", Default: "\U0001FAE9", SortOrder: 350, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "faceWithMedicalMask", Default: "\U0001F637", SortOrder: 360, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "faceWithThermometer", Default: "\U0001F912", SortOrder: 370, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "nauseatedFace", Default: "\U0001F922", SortOrder: 380, Introduced: V(3, 0), Tones: NoTones()},
	{ID: "sneezingFace", Default: "\U0001F927", SortOrder: 390, Introduced: V(3, 0), Tones: NoTones()},
	{ID: "overheatedFace", Default: "\U0001F975", SortOrder: 400, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "freezingFace", Default: "\U0001F976", SortOrder: 410, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "dizzyFace", Default: "\U0001F635", SortOrder: 420, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "explodingHead", Default: "\U0001F92F", SortOrder: 430, Introduced: V(5, 0), Tones: NoTones()},
	{ID: "faceWithCowboyHat", Default: "\U0001F920", SortOrder: 440, Introduced: V(3, 0), Tones: NoTones()},
	{ID: "partyingFace", Default: "\U0001F973", SortOrder: 450, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "smilingFaceWithSunglasses", Default: "\U0001F60E", SortOrder: 460, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "nerdFace", Default: "\U0001F913", SortOrder: 470, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "confusedFace", Default: "\U0001F615", SortOrder: 480, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "worriedFace", Default: "\U0001F61F", SortOrder: 490, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "slightlyFrowningFace", Default: "\U0001F641", SortOrder: 500, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "faceWithOpenMouth", Default: "\U0001F62E", SortOrder: 510, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "astonishedFace", Default: "\U0001F632", SortOrder: 520, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flushedFace", Default: "\U0001F633", SortOrder: 530, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "pleadingFace", Default: "\U0001F97A", SortOrder: 540, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "fearfulFace", Default: "\U0001F628", SortOrder: 550, Introduced: V(0, 6), Tones: NoTones()},
	{ID: CryingFace, Default: "\U0001F622", SortOrder: 560, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "loudlyCryingFace", Default: "\U0001F62D", SortOrder: 570, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "faceScreamingInFear", Default: "\U0001F631", SortOrder: 580, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "poutingFace", Default: "\U0001F621", SortOrder: 590, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "angryFace", Default: "\U0001F620", SortOrder: 600, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "distortedFace", Default: "\U0001FAEA", SortOrder: 610, Introduced: V(17, 0), Tones: NoTones()},
	{ID: "skull", Default: "\U0001F480", SortOrder: 620, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "pileOfPoo", Default: "\U0001F4A9", SortOrder: 630, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "ghost", Default: "\U0001F47B", SortOrder: 640, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "robotFace", Default: "\U0001F916", SortOrder: 650, Introduced: V(1, 0), Tones: NoTones()},
	// hearts
	{ID: HeavyBlackHeart, Default: "\u2764\uFE0F", SortOrder: 660, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "pinkHeart", Default: "\U0001FA77", SortOrder: 670, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "orangeHeart", Default: "\U0001F9E1", SortOrder: 680, Introduced: V(5, 0), Tones: NoTones()},
	{ID: "yellowHeart", Default: "\U0001F49B", SortOrder: 690, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "greenHeart", Default: "\U0001F49A", SortOrder: 700, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "blueHeart", Default: "\U0001F499", SortOrder: 710, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "lightBlueHeart", Default: "\U0001FA75", SortOrder: 720, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "purpleHeart", Default: "\U0001F49C", SortOrder: 730, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "blackHeart", Default: "\U0001F5A4", SortOrder: 740, Introduced: V(3, 0), Tones: NoTones()},
	{ID: "greyHeart", Default: "\U0001FA76", SortOrder: 750, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "whiteHeart", Default: "\U0001F90D", SortOrder: 760, Introduced: V(12, 0), Tones: NoTones()},
	{ID: "brownHeart", Default: "\U0001F90E", SortOrder: 770, Introduced: V(12, 0), Tones: NoTones()},
	{ID: "brokenHeart", Default: "\U0001F494", SortOrder: 780, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "heartOnFire", Default: "\u2764\uFE0F\u200D\U0001F525", SortOrder: 790, Introduced: V(13, 1), Tones: NoTones()},
	{ID: "mendingHeart", Default: "\u2764\uFE0F\u200D\U0001FA79", SortOrder: 800, Introduced: V(13, 1), Tones: NoTones()},
	{ID: "sparklingHeart", Default: "\U0001F496", SortOrder: 810, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "hundredPointsSymbol", Default: "\U0001F4AF", SortOrder: 820, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "collisionSymbol", Default: "\U0001F4A5", SortOrder: 830, Introduced: V(0, 6), Tones: NoTones()},
	// hands
	{ID: "wavingHandSign", Default: "\U0001F44B", SortOrder: 840, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "raisedBackOfHand", Default: "\U0001F91A", SortOrder: 850, Introduced: V(3, 0), Tones: ModifierTones()},
	{ID: "raisedHand", Default: "\u270B", SortOrder: 860, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "vulcanSalute", Default: "\U0001F596", SortOrder: 870, Introduced: V(1, 0), Tones: ModifierTones()},
	{ID: "rightwardsHand", Default: "\U0001FAF1", SortOrder: 880, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "leftwardsHand", Default: "\U0001FAF2", SortOrder: 890, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "leftwardsPushingHand", Default: "\U0001FAF7", SortOrder: 900, Introduced: V(15, 0), Tones: ModifierTones()},
	{ID: "rightwardsPushingHand", Default: "\U0001FAF8", SortOrder: 910, Introduced: V(15, 0), Tones: ModifierTones()},
	{ID: "okHandSign", Default: "\U0001F44C", SortOrder: 920, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "pinchedFingers", Default: "\U0001F90C", SortOrder: 930, Introduced: V(13, 0), Tones: ModifierTones()},
	{ID: "victoryHand", Default: "\u270C\uFE0F", SortOrder: 940, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "handWithIndexFingerAndThumbCrossed", Default: "\U0001FAF0", SortOrder: 950, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "loveYouGesture", Default: "\U0001F91F", SortOrder: 960, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "signOfTheHorns", Default: "\U0001F918", SortOrder: 970, Introduced: V(1, 0), Tones: ModifierTones()},
	{ID: "callMeHand", Default: "\U0001F919", SortOrder: 980, Introduced: V(3, 0), Tones: ModifierTones()},
	{ID: "whiteUpPointingIndex", Default: "\u261D\uFE0F", SortOrder: 990, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: ThumbsUpSign, Default: "\U0001F44D", SortOrder: 1000, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: ThumbsDownSign, Default: "\U0001F44E", SortOrder: 1010, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "raisedFist", Default: "\u270A", SortOrder: 1020, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "fistedHandSign", Default: "\U0001F44A", SortOrder: 1030, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "clappingHandsSign", Default: "\U0001F44F", SortOrder: 1040, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "personRaisingBothHandsInCelebration", Default: "\U0001F64C", SortOrder: 1050, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "heartHands", Default: "\U0001FAF6", SortOrder: 1060, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "openHandsSign", Default: "\U0001F450", SortOrder: 1070, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "palmsUpTogether", Default: "\U0001F932", SortOrder: 1080, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "handshake", Default: "\U0001F91D", SortOrder: 1090, Introduced: V(3, 0), Tones: PairTones("\U0001F91D{1}", "\U0001FAF1{1}\u200D\U0001FAF2{2}")},
	{ID: PersonWithFoldedHands, Default: "\U0001F64F", SortOrder: 1100, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "writingHand", Default: "\u270D\uFE0F", SortOrder: 1110, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "nailPolish", Default: "\U0001F485", SortOrder: 1120, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "flexedBiceps", Default: "\U0001F4AA", SortOrder: 1130, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "ear", Default: "\U0001F442", SortOrder: 1140, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "nose", Default: "\U0001F443", SortOrder: 1150, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "fingerprint", Default: "\U0001FAC6", SortOrder: 1160, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "brain", Default: "\U0001F9E0", SortOrder: 1170, Introduced: V(5, 0), Tones: NoTones()},
	{ID: "eyes", Default: "\U0001F440", SortOrder: 1180, Introduced: V(0, 6), Tones: NoTones()},
	// people
	{ID: "baby", Default: "\U0001F476", SortOrder: 1190, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "child", Default: "\U0001F9D2", SortOrder: 1200, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "boy", Default: "\U0001F466", SortOrder: 1210, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "girl", Default: "\U0001F467", SortOrder: 1220, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "adult", Default: "\U0001F9D1", SortOrder: 1230, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "man", Default: "\U0001F468", SortOrder: 1240, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "woman", Default: "\U0001F469", SortOrder: 1250, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "olderAdult", Default: "\U0001F9D3", SortOrder: 1260, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "personFrowning", Default: "\U0001F64D", SortOrder: 1270, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "personGesturingNo", Default: "\U0001F645", SortOrder: 1280, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "personRaisingHand", Default: "\U0001F64B", SortOrder: 1290, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "personFacepalming", Default: "\U0001F926", SortOrder: 1300, Introduced: V(3, 0), Tones: ModifierTones()},
	{ID: "personShrugging", Default: "\U0001F937", SortOrder: 1310, Introduced: V(3, 0), Tones: ModifierTones()},
	{ID: "womanShrugging", Default: "\U0001F937\u200D\u2640\uFE0F", SortOrder: 1320, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "manShrugging", Default: "\U0001F937\u200D\u2642\uFE0F", SortOrder: 1330, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "healthWorker", Default: "\U0001F9D1\u200D\u2695\uFE0F", SortOrder: 1340, Introduced: V(12, 1), Tones: ModifierTones()},
	{ID: "manHealthWorker", Default: "\U0001F468\u200D\u2695\uFE0F", SortOrder: 1350, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "womanHealthWorker", Default: "\U0001F469\u200D\u2695\uFE0F", SortOrder: 1360, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "technologist", Default: "\U0001F9D1\u200D\U0001F4BB", SortOrder: 1370, Introduced: V(12, 1), Tones: ModifierTones()},
	{ID: "cook", Default: "\U0001F9D1\u200D\U0001F373", SortOrder: 1380, Introduced: V(12, 1), Tones: ModifierTones()},
	{ID: "pregnantPerson", Default: "\U0001FAC4", SortOrder: 1390, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "personWithCrown", Default: "\U0001FAC5", SortOrder: 1400, Introduced: V(14, 0), Tones: ModifierTones()},
	{ID: "ninja", Default: "\U0001F977", SortOrder: 1410, Introduced: V(13, 0), Tones: ModifierTones()},
	{ID: "runner", Default: "\U0001F3C3", SortOrder: 1420, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "womanRunning", Default: "\U0001F3C3\u200D\u2640\uFE0F", SortOrder: 1430, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "manRunning", Default: "\U0001F3C3\u200D\u2642\uFE0F", SortOrder: 1440, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "personRunningFacingRight", Default: "\U0001F3C3\u200D\u27A1\uFE0F", SortOrder: 1450, Introduced: V(15, 1), Tones: ModifierTones()},
	{ID: "personWalkingFacingRight", Default: "\U0001F6B6\u200D\u27A1\uFE0F", SortOrder: 1460, Introduced: V(15, 1), Tones: ModifierTones()},
	{ID: "dancer", Default: "\U0001F483", SortOrder: 1470, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "manDancing", Default: "\U0001F57A", SortOrder: 1480, Introduced: V(3, 0), Tones: ModifierTones()},
	{ID: "weightLifter", Default: "\U0001F3CB\uFE0F", SortOrder: 1490, Introduced: V(0, 7), Tones: ModifierTones()},
	{ID: "womanLiftingWeights", Default: "\U0001F3CB\uFE0F\u200D\u2640\uFE0F", SortOrder: 1500, Introduced: V(4, 0), Tones: ModifierTones()},
	{ID: "swimmer", Default: "\U0001F3CA", SortOrder: 1510, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "bicyclist", Default: "\U0001F6B4", SortOrder: 1520, Introduced: V(1, 0), Tones: ModifierTones()},
	{ID: "personInLotusPosition", Default: "\U0001F9D8", SortOrder: 1530, Introduced: V(5, 0), Tones: ModifierTones()},
	{ID: "bath", Default: "\U0001F6C0", SortOrder: 1540, Introduced: V(0, 6), Tones: ModifierTones()},
	{ID: "personInBed", Default: "\U0001F6CC", SortOrder: 1550, Introduced: V(1, 0), Tones: ModifierTones()},
	{ID: "peopleHoldingHands", Default: "\U0001F9D1\u200D\U0001F91D\u200D\U0001F9D1", SortOrder: 1560, Introduced: V(12, 0), Tones: PairTones("", "\U0001F9D1{1}\u200D\U0001F91D\u200D\U0001F9D1{2}")},
	{ID: "twoWomenHoldingHands", Default: "\U0001F46D", SortOrder: 1570, Introduced: V(1, 0), Tones: PairTones("\U0001F46D{1}", "\U0001F469{1}\u200D\U0001F91D\u200D\U0001F469{2}")},
	{ID: "manAndWomanHoldingHands", Default: "\U0001F46B", SortOrder: 1580, Introduced: V(0, 6), Tones: PairTones("\U0001F46B{1}", "\U0001F469{1}\u200D\U0001F91D\u200D\U0001F468{2}")},
	{ID: "twoMenHoldingHands", Default: "\U0001F46C", SortOrder: 1590, Introduced: V(1, 0), Tones: PairTones("\U0001F46C{1}", "\U0001F468{1}\u200D\U0001F91D\u200D\U0001F468{2}")},
	{ID: "kiss", Default: "\U0001F48F", SortOrder: 1600, Introduced: V(0, 6), Tones: PairTones("\U0001F48F{1}", "\U0001F9D1{1}\u200D\u2764\uFE0F\u200D\U0001F48B\u200D\U0001F9D1{2}")},
	{ID: "coupleWithHeart", Default: "\U0001F491", SortOrder: 1610, Introduced: V(0, 6), Tones: PairTones("\U0001F491{1}", "\U0001F9D1{1}\u200D\u2764\uFE0F\u200D\U0001F9D1{2}")},
	{ID: "familyAdultAdultChild", Default: "\U0001F9D1\u200D\U0001F9D1\u200D\U0001F9D2", SortOrder: 1620, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "speakingHeadInSilhouette", Default: "\U0001F5E3\uFE0F", SortOrder: 1630, Introduced: V(0, 7), Tones: NoTones()},
	// animals & nature
	{ID: "dogFace", Default: "\U0001F436", SortOrder: 1640, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "catFace", Default: "\U0001F431", SortOrder: 1650, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "unicornFace", Default: "\U0001F984", SortOrder: 1660, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "seeNoEvilMonkey", Default: "\U0001F648", SortOrder: 1670, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "moose", Default: "\U0001FACE", SortOrder: 1680, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "donkey", Default: "\U0001FACF", SortOrder: 1690, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "jellyfish", Default: "\U0001FABC", SortOrder: 1700, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "goose", Default: "\U0001FABF", SortOrder: 1710, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "wing", Default: "\U0001FABD", SortOrder: 1720, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "blackBird", Default: "\U0001F426\u200D\u2B1B", SortOrder: 1730, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "phoenix", Default: "\U0001F426\u200D\U0001F525", SortOrder: 1740, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "sunflower", Default: "\U0001F33B", SortOrder: 1750, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "cherryBlossom", Default: "\U0001F338", SortOrder: 1760, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "rose", Default: "\U0001F339", SortOrder: 1770, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "hyacinth", Default: "\U0001FABB", SortOrder: 1780, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "leaflessTree", Default: "\U0001FABE", SortOrder: 1790, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "sunWithFace", Default: "\U0001F31E", SortOrder: 1800, Introduced: V(1, 0), Tones: NoTones()},
	{ID: "rainbow", Default: "\U0001F308", SortOrder: 1810, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "fire", Default: "\U0001F525", SortOrder: 1820, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "sparkles", Default: "\u2728", SortOrder: 1830, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "snowflake", Default: "\u2744\uFE0F", SortOrder: 1840, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "highVoltageSign", Default: "\u26A1", SortOrder: 1850, Introduced: V(0, 6), Tones: NoTones()},
	// food & drink
	{ID: "ginger", Default: "\U0001FADA", SortOrder: 1860, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "peaPod", Default: "\U0001FADB", SortOrder: 1870, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "rootVegetable", Default: "\U0001FADC", SortOrder: 1880, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "lime", Default: "\U0001F34B\u200D\U0001F7E9", SortOrder: 1890, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "brownMushroom", Default: "\U0001F344\u200D\U0001F7EB", SortOrder: 1900, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "slicedPizza", Default: "\U0001F355", SortOrder: 1910, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "hamburger", Default: "\U0001F354", SortOrder: 1920, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "birthdayCake", Default: "\U0001F382", SortOrder: 1930, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "hotBeverage", Default: "\u2615", SortOrder: 1940, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "clinkingBeerMugs", Default: "\U0001F37B", SortOrder: 1950, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "clinkingGlasses", Default: "\U0001F942", SortOrder: 1960, Introduced: V(3, 0), Tones: NoTones()},
	// activities & objects
	{ID: "partyPopper", Default: "\U0001F389", SortOrder: 1970, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "wrappedPresent", Default: "\U0001F381", SortOrder: 1980, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "trophy", Default: "\U0001F3C6", SortOrder: 1990, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "soccerBall", Default: "\u26BD", SortOrder: 2000, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "gameDie", Default: "\U0001F3B2", SortOrder: 2010, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "guitar", Default: "\U0001F3B8", SortOrder: 2020, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "maracas", Default: "\U0001FA87", SortOrder: 2030, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "flute", Default: "\U0001FA88", SortOrder: 2040, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "harp", Default: "\U0001FA89", SortOrder: 2050, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "trombone", Default: "\U0001FA8A", SortOrder: 2060, Introduced: V(17, 0), Tones: NoTones()},
	{ID: "shovel", Default: "\U0001FA8F", SortOrder: 2070, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "treasureChest", Default: "\U0001FA8E", SortOrder: 2080, Introduced: V(17, 0), Tones: NoTones()},
	{ID: "splatter", Default: "\U0001FADF", SortOrder: 2090, Introduced: V(16, 0), Tones: NoTones()},
	{ID: "foldingHandFan", Default: "\U0001FAAD", SortOrder: 2100, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "hairPick", Default: "\U0001FAAE", SortOrder: 2110, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "khanda", Default: "\U0001FAAF", SortOrder: 2120, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "wireless", Default: "\U0001F6DC", SortOrder: 2130, Introduced: V(15, 0), Tones: NoTones()},
	{ID: "brokenChain", Default: "\u26D3\uFE0F\u200D\U0001F4A5", SortOrder: 2140, Introduced: V(15, 1), Tones: NoTones()},
	{ID: "rocket", Default: "\U0001F680", SortOrder: 2150, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "electricLightBulb", Default: "\U0001F4A1", SortOrder: 2160, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "hourglass", Default: "\u231B", SortOrder: 2170, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "alarmClock", Default: "\u23F0", SortOrder: 2180, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "mobilePhone", Default: "\U0001F4F1", SortOrder: 2190, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "lock", Default: "\U0001F512", SortOrder: 2200, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "key", Default: "\U0001F511", SortOrder: 2210, Introduced: V(0, 6), Tones: NoTones()},
	// symbols
	{ID: "heavyCheckMark", Default: "\u2714\uFE0F", SortOrder: 2220, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "crossMark", Default: "\u274C", SortOrder: 2230, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "warningSign", Default: "\u26A0\uFE0F", SortOrder: 2240, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "noEntry", Default: "\u26D4", SortOrder: 2250, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "blackQuestionMarkOrnament", Default: "\u2753", SortOrder: 2260, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "keycapDigitOne", Default: "1\uFE0F\u20E3", SortOrder: 2270, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "keycapNumberSign", Default: "#\uFE0F\u20E3", SortOrder: 2280, Introduced: V(0, 6), Tones: NoTones()},
	// flags
	{ID: "chequeredFlag", Default: "\U0001F3C1", SortOrder: 2290, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "wavingWhiteFlag", Default: "\U0001F3F3\uFE0F", SortOrder: 2300, Introduced: V(0, 7), Tones: NoTones()},
	{ID: "rainbowFlag", Default: "\U0001F3F3\uFE0F\u200D\U0001F308", SortOrder: 2310, Introduced: V(4, 0), Tones: NoTones()},
	{ID: "transgenderFlag", Default: "\U0001F3F3\uFE0F\u200D\u26A7\uFE0F", SortOrder: 2320, Introduced: V(13, 0), Tones: NoTones()},
	{ID: "pirateFlag", Default: "\U0001F3F4\u200D\u2620\uFE0F", SortOrder: 2330, Introduced: V(11, 0), Tones: NoTones()},
	{ID: "flagSwitzerland", Default: "\U0001F1E8\U0001F1ED", SortOrder: 2340, Introduced: V(2, 0), Tones: NoTones()},
	{ID: "flagGermany", Default: "\U0001F1E9\U0001F1EA", SortOrder: 2350, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagFrance", Default: "\U0001F1EB\U0001F1F7", SortOrder: 2360, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagItaly", Default: "\U0001F1EE\U0001F1F9", SortOrder: 2370, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagSpain", Default: "\U0001F1EA\U0001F1F8", SortOrder: 2380, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagJapan", Default: "\U0001F1EF\U0001F1F5", SortOrder: 2390, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagNetherlands", Default: "\U0001F1F3\U0001F1F1", SortOrder: 2400, Introduced: V(2, 0), Tones: NoTones()},
	{ID: "flagPortugal", Default: "\U0001F1F5\U0001F1F9", SortOrder: 2410, Introduced: V(2, 0), Tones: NoTones()},
	{ID: "flagBrazil", Default: "\U0001F1E7\U0001F1F7", SortOrder: 2420, Introduced: V(2, 0), Tones: NoTones()},
	{ID: "flagUnitedKingdom", Default: "\U0001F1EC\U0001F1E7", SortOrder: 2430, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagUnitedStates", Default: "\U0001F1FA\U0001F1F8", SortOrder: 2440, Introduced: V(0, 6), Tones: NoTones()},
	{ID: "flagScotland", Default: "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F", SortOrder: 2450, Introduced: V(5, 0), Tones: NoTones()},
}
