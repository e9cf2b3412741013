// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapXaGwSJ4CjOCG7X89KhqvDwΞΞ   = ord.NewMapSer[string, float64](ord.String, varint.Float64)
	slice9T4QnmRcQd0cQΣnqouxcnQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceBrutic6eio74qmM6wCY09AΞΞ = ord.NewSliceSer[string](ord.String)
	sliceQuoBxftPh4euGeq8ΔEs6EQΞΞ = ord.NewSliceSer[Mention](MentionMUS)
	sliceR21ilHacI913nRkVkUw6FAΞΞ = ord.NewSliceSer[CategoryScore](CategoryScoreMUS)
	sliceSzΔubE5WHPK7khgGQk5okQΞΞ = ord.NewSliceSer[Sentence](SentenceMUS)
	slicec2g8ePsΣH56Vc8FiLtgΔCQΞΞ = ord.NewSliceSer[Segment](SegmentMUS)
	slicedTtALQCx1GYRF2TF6mwngQΞΞ = ord.NewSliceSer[Entity](EntityMUS)
	slicef6BΣlYRCmbΔg2u5XcJrTSQΞΞ = ord.NewSliceSer[EmbeddingHandle](EmbeddingHandleMUS)
	slicemΣ948UCFJGI7OIyrwUΔ6XAΞΞ = ord.NewSliceSer[ID](IDMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var FingerprintMUS = fingerprintMUS{}

type fingerprintMUS struct{}

func (s fingerprintMUS) Marshal(v Fingerprint, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s fingerprintMUS) Unmarshal(bs []byte) (v Fingerprint, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Fingerprint(tmp)
	return
}

func (s fingerprintMUS) Size(v Fingerprint) (size int) {
	return ord.String.Size(string(v))
}

func (s fingerprintMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ConceptWeightsMUS = conceptWeightsMUS{}

type conceptWeightsMUS struct{}

func (s conceptWeightsMUS) Marshal(v ConceptWeights, bs []byte) (n int) {
	return mapXaGwSJ4CjOCG7X89KhqvDwΞΞ.Marshal(map[string]float64(v), bs)
}

func (s conceptWeightsMUS) Unmarshal(bs []byte) (v ConceptWeights, n int, err error) {
	tmp, n, err := mapXaGwSJ4CjOCG7X89KhqvDwΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ConceptWeights(tmp)
	return
}

func (s conceptWeightsMUS) Size(v ConceptWeights) (size int) {
	return mapXaGwSJ4CjOCG7X89KhqvDwΞΞ.Size(map[string]float64(v))
}

func (s conceptWeightsMUS) Skip(bs []byte) (n int, err error) {
	return mapXaGwSJ4CjOCG7X89KhqvDwΞΞ.Skip(bs)
}

var CategoryScoreMUS = categoryScoreMUS{}

type categoryScoreMUS struct{}

func (s categoryScoreMUS) Marshal(v CategoryScore, bs []byte) (n int) {
	n = ord.String.Marshal(v.Category, bs)
	return n + varint.Float64.Marshal(v.Score, bs[n:])
}

func (s categoryScoreMUS) Unmarshal(bs []byte) (v CategoryScore, n int, err error) {
	v.Category, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Score, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s categoryScoreMUS) Size(v CategoryScore) (size int) {
	size = ord.String.Size(v.Category)
	return size + varint.Float64.Size(v.Score)
}

func (s categoryScoreMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var EmbeddingHandleMUS = embeddingHandleMUS{}

type embeddingHandleMUS struct{}

func (s embeddingHandleMUS) Marshal(v EmbeddingHandle, bs []byte) (n int) {
	n = ord.String.Marshal(v.Model, bs)
	return n + ord.String.Marshal(v.Key, bs[n:])
}

func (s embeddingHandleMUS) Unmarshal(bs []byte) (v EmbeddingHandle, n int, err error) {
	v.Model, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Key, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s embeddingHandleMUS) Size(v EmbeddingHandle) (size int) {
	size = ord.String.Size(v.Model)
	return size + ord.String.Size(v.Key)
}

func (s embeddingHandleMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Source, bs[n:])
	n += FingerprintMUS.Marshal(v.Fingerprint, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.IngestedAt, bs[n:])
	n += varint.Int.Marshal(v.TokenCount, bs[n:])
	n += sliceR21ilHacI913nRkVkUw6FAΞΞ.Marshal(v.Topics, bs[n:])
	return n + sliceR21ilHacI913nRkVkUw6FAΞΞ.Marshal(v.Styles, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Fingerprint, n1, err = FingerprintMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IngestedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TokenCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Topics, n1, err = sliceR21ilHacI913nRkVkUw6FAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Styles, n1, err = sliceR21ilHacI913nRkVkUw6FAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Source)
	size += FingerprintMUS.Size(v.Fingerprint)
	size += raw.TimeUnixMicro.Size(v.IngestedAt)
	size += varint.Int.Size(v.TokenCount)
	size += sliceR21ilHacI913nRkVkUw6FAΞΞ.Size(v.Topics)
	return size + sliceR21ilHacI913nRkVkUw6FAΞΞ.Size(v.Styles)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = FingerprintMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceR21ilHacI913nRkVkUw6FAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceR21ilHacI913nRkVkUw6FAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var SegmentMUS = segmentMUS{}

type segmentMUS struct{}

func (s segmentMUS) Marshal(v Segment, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += varint.Int.Marshal(v.Ordinal, bs[n:])
	n += sliceBrutic6eio74qmM6wCY09AΞΞ.Marshal(v.KeyTerms, bs[n:])
	return n + slicemΣ948UCFJGI7OIyrwUΔ6XAΞΞ.Marshal(v.SentenceIds, bs[n:])
}

func (s segmentMUS) Unmarshal(bs []byte) (v Segment, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Ordinal, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeyTerms, n1, err = sliceBrutic6eio74qmM6wCY09AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SentenceIds, n1, err = slicemΣ948UCFJGI7OIyrwUΔ6XAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s segmentMUS) Size(v Segment) (size int) {
	size = IDMUS.Size(v.Id)
	size += varint.Int.Size(v.Ordinal)
	size += sliceBrutic6eio74qmM6wCY09AΞΞ.Size(v.KeyTerms)
	return size + slicemΣ948UCFJGI7OIyrwUΔ6XAΞΞ.Size(v.SentenceIds)
}

func (s segmentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBrutic6eio74qmM6wCY09AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicemΣ948UCFJGI7OIyrwUΔ6XAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var SentenceMUS = sentenceMUS{}

type sentenceMUS struct{}

func (s sentenceMUS) Marshal(v Sentence, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += varint.Int.Marshal(v.Ordinal, bs[n:])
	n += ConceptWeightsMUS.Marshal(v.Concepts, bs[n:])
	return n + EmbeddingHandleMUS.Marshal(v.Embedding, bs[n:])
}

func (s sentenceMUS) Unmarshal(bs []byte) (v Sentence, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Ordinal, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Concepts, n1, err = ConceptWeightsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = EmbeddingHandleMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sentenceMUS) Size(v Sentence) (size int) {
	size = IDMUS.Size(v.Id)
	size += varint.Int.Size(v.Ordinal)
	size += ConceptWeightsMUS.Size(v.Concepts)
	return size + EmbeddingHandleMUS.Size(v.Embedding)
}

func (s sentenceMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ConceptWeightsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EmbeddingHandleMUS.Skip(bs[n:])
	n += n1
	return
}

var EntityMUS = entityMUS{}

type entityMUS struct{}

func (s entityMUS) Marshal(v Entity, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Type, bs[n:])
	n += ConceptWeightsMUS.Marshal(v.Concepts, bs[n:])
	return n + slicef6BΣlYRCmbΔg2u5XcJrTSQΞΞ.Marshal(v.Embeddings, bs[n:])
}

func (s entityMUS) Unmarshal(bs []byte) (v Entity, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Concepts, n1, err = ConceptWeightsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embeddings, n1, err = slicef6BΣlYRCmbΔg2u5XcJrTSQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s entityMUS) Size(v Entity) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Label)
	size += ord.String.Size(v.Type)
	size += ConceptWeightsMUS.Size(v.Concepts)
	return size + slicef6BΣlYRCmbΔg2u5XcJrTSQΞΞ.Size(v.Embeddings)
}

func (s entityMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ConceptWeightsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicef6BΣlYRCmbΔg2u5XcJrTSQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var MentionMUS = mentionMUS{}

type mentionMUS struct{}

func (s mentionMUS) Marshal(v Mention, bs []byte) (n int) {
	n = IDMUS.Marshal(v.SentenceId, bs)
	n += IDMUS.Marshal(v.EntityId, bs[n:])
	n += ord.String.Marshal(v.Surface, bs[n:])
	n += ord.String.Marshal(v.Concept, bs[n:])
	return n + varint.Float64.Marshal(v.Weight, bs[n:])
}

func (s mentionMUS) Unmarshal(bs []byte) (v Mention, n int, err error) {
	v.SentenceId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.EntityId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Surface, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Concept, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Weight, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s mentionMUS) Size(v Mention) (size int) {
	size = IDMUS.Size(v.SentenceId)
	size += IDMUS.Size(v.EntityId)
	size += ord.String.Size(v.Surface)
	size += ord.String.Size(v.Concept)
	return size + varint.Float64.Size(v.Weight)
}

func (s mentionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var ArtifactMUS = artifactMUS{}

type artifactMUS struct{}

func (s artifactMUS) Marshal(v Artifact, bs []byte) (n int) {
	n = DocumentMUS.Marshal(v.Document, bs)
	n += slicec2g8ePsΣH56Vc8FiLtgΔCQΞΞ.Marshal(v.Segments, bs[n:])
	n += sliceSzΔubE5WHPK7khgGQk5okQΞΞ.Marshal(v.Sentences, bs[n:])
	n += slicedTtALQCx1GYRF2TF6mwngQΞΞ.Marshal(v.Entities, bs[n:])
	n += sliceQuoBxftPh4euGeq8ΔEs6EQΞΞ.Marshal(v.Mentions, bs[n:])
	return n + ord.String.Marshal(v.Script, bs[n:])
}

func (s artifactMUS) Unmarshal(bs []byte) (v Artifact, n int, err error) {
	v.Document, n, err = DocumentMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Segments, n1, err = slicec2g8ePsΣH56Vc8FiLtgΔCQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Sentences, n1, err = sliceSzΔubE5WHPK7khgGQk5okQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Entities, n1, err = slicedTtALQCx1GYRF2TF6mwngQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Mentions, n1, err = sliceQuoBxftPh4euGeq8ΔEs6EQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Script, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s artifactMUS) Size(v Artifact) (size int) {
	size = DocumentMUS.Size(v.Document)
	size += slicec2g8ePsΣH56Vc8FiLtgΔCQΞΞ.Size(v.Segments)
	size += sliceSzΔubE5WHPK7khgGQk5okQΞΞ.Size(v.Sentences)
	size += slicedTtALQCx1GYRF2TF6mwngQΞΞ.Size(v.Entities)
	size += sliceQuoBxftPh4euGeq8ΔEs6EQΞΞ.Size(v.Mentions)
	return size + ord.String.Size(v.Script)
}

func (s artifactMUS) Skip(bs []byte) (n int, err error) {
	n, err = DocumentMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicec2g8ePsΣH56Vc8FiLtgΔCQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceSzΔubE5WHPK7khgGQk5okQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicedTtALQCx1GYRF2TF6mwngQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQuoBxftPh4euGeq8ΔEs6EQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var VectorRecordMUS = vectorRecordMUS{}

type vectorRecordMUS struct{}

func (s vectorRecordMUS) Marshal(v VectorRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Model, bs)
	n += ord.String.Marshal(v.Key, bs[n:])
	n += slice9T4QnmRcQd0cQΣnqouxcnQΞΞ.Marshal(v.Values, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s vectorRecordMUS) Unmarshal(bs []byte) (v VectorRecord, n int, err error) {
	v.Model, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Key, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Values, n1, err = slice9T4QnmRcQd0cQΣnqouxcnQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vectorRecordMUS) Size(v VectorRecord) (size int) {
	size = ord.String.Size(v.Model)
	size += ord.String.Size(v.Key)
	size += slice9T4QnmRcQd0cQΣnqouxcnQΞΞ.Size(v.Values)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s vectorRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice9T4QnmRcQd0cQΣnqouxcnQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
