package main

const vsSource = `#version 300 es
	layout (location = 0) in vec3 aVertexPosition;
	layout (location = 1) in vec3 aVertexNormal;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out vec3 vNormal;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * vec4(aVertexPosition, 1.0);
		vNormal = aVertexNormal;
	}
`

const fsSource = `#version 300 es
	precision mediump float;
	uniform vec3 uBaseColor;
	uniform vec3 uLightDirection;
	uniform vec3 uLightColor;
	uniform vec3 uAmbientColor;
	in vec3 vNormal;
	out vec4 outColor;

	void main(void) {
		// World space lambert with both faces lit.
		float d = abs(dot(normalize(vNormal), uLightDirection));
		vec3 c = uBaseColor * (uAmbientColor + uLightColor * d);
		outColor = vec4(min(c, vec3(1.0)), 1.0);
	}
`
