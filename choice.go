package der

/*
choice.go implements the ASN.1 CHOICE type (X.690 §8.13): a CHOICE
value declares a fixed, static set of accepted tags, and decoding
dispatches on a tag peek against that set rather than a
runtime-discovered registry. A nil or empty accepted-tag set is
treated as unconstrained and matches any tag, letting an open-type
carrier such as [Any] satisfy Choice without enumerating tags it
cannot know in advance.
*/

// Choice is implemented by any type representing an ASN.1 CHOICE: a
// value that is exactly one of a fixed, statically known set of
// alternatives. AcceptedTags returns that set; it must be the same
// list for every value of the type, since it is consulted before the
// alternative is known.
type Choice interface {
	Decodable
	AcceptedTags() []Tag
}

// acceptsTag reports whether tag appears in accepted. An empty
// accepted set is unconstrained and accepts every tag.
func acceptsTag(accepted []Tag, tag Tag) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, t := range accepted {
		if t == tag {
			return true
		}
	}
	return false
}

// DecodeChoice peeks the upcoming tag and, if it appears in c's
// AcceptedTags, decodes c from cur. Otherwise it reports
// [KindUnexpectedTag] without consuming input.
func DecodeChoice(cur *Cursor, c Choice) error {
	pos := cur.Pos()
	tag, err := cur.PeekTag()
	if err != nil {
		return err
	}
	accepted := c.AcceptedTags()
	if !acceptsTag(accepted, tag) {
		var want Tag
		if len(accepted) > 0 {
			want = accepted[0]
		}
		return errUnexpectedTag(want, tag, pos)
	}
	return c.DecodeDER(cur)
}
